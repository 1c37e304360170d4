package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/EmmanuelLopez4/clinica-proyFin/docs"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/api"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/service"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/infrastructure/config"
	mongodb "github.com/EmmanuelLopez4/clinica-proyFin/internal/infrastructure/db/mongo"
	redisdb "github.com/EmmanuelLopez4/clinica-proyFin/internal/infrastructure/db/redis"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/infrastructure/storage"
	"github.com/EmmanuelLopez4/clinica-proyFin/pkg/logger"
)

// @title                      Clinica Dental API
// @version                    1.0
// @description                Dental clinic scheduling backend.
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	accountRepo := mongodb.NewAccountRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)

	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account indexes failed")
	}
	if err := appointmentRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("appointment indexes failed")
	}

	photoStore, err := storage.NewDiskStore(cfg.PhotoDir)
	if err != nil {
		log.Fatal().Err(err).Msg("photo store init failed")
	}

	svc := api.Services{
		Auth:     service.NewAuthService(accountRepo, cfg.JWTSecret, 24*time.Hour),
		Schedule: service.NewScheduleService(appointmentRepo, patientRepo, accountRepo, log),
		Patients: service.NewPatientService(patientRepo, accountRepo, appointmentRepo, log),
		Accounts: service.NewAccountService(accountRepo, log),
		Profile:  service.NewProfileService(accountRepo, photoStore, redisdb.NewAccountLock(rdb), log),
	}

	e := api.NewRouter(svc, api.Options{
		JWTSecret: cfg.JWTSecret,
		PhotoDir:  cfg.PhotoDir,
		Mongo:     db,
		Redis:     rdb,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
