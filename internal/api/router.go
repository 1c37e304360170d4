package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/api/handler"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/api/middleware"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// Services bundles the use-case implementations the router depends on.
type Services struct {
	Auth     ports.AuthService
	Schedule ports.ScheduleService
	Patients ports.PatientService
	Accounts ports.AccountService
	Profile  ports.ProfileService
}

// Options carries the infrastructure handles the router needs beyond the
// services themselves.
type Options struct {
	JWTSecret string
	PhotoDir  string
	Mongo     *mongo.Database
	Redis     *redis.Client
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinica"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	scheduleHandler := handler.NewScheduleHandler(svc.Schedule)
	patientHandler := handler.NewPatientHandler(svc.Patients)
	accountHandler := handler.NewAccountHandler(svc.Accounts)
	profileHandler := handler.NewProfileHandler(svc.Profile)

	// --- Auth routes (rate-limited) ---
	authLimit := middleware.RateLimit(middleware.NewRateLimiter(5, 10))
	e.POST("/auth/register", authHandler.Register, authLimit)
	e.POST("/auth/login", authHandler.Login, authLimit)

	// --- Probes, metrics, docs, static photos ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(opts.Mongo, opts.Redis).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/images", opts.PhotoDir)

	// --- Protected API ---
	v1 := e.Group("/v1",
		middleware.Auth(opts.JWTSecret),
		middleware.SyncPatient(svc.Patients, opts.Logger),
	)

	v1.GET("/appointments", scheduleHandler.List)
	v1.POST("/appointments", scheduleHandler.Create)
	v1.GET("/appointments/:id", scheduleHandler.Get)
	v1.PUT("/appointments/:id", scheduleHandler.Update)
	v1.DELETE("/appointments/:id", scheduleHandler.Delete)

	v1.GET("/clinicians", accountHandler.ListClinicians)
	v1.GET("/accounts/me", accountHandler.Me)
	v1.PUT("/profile/photo", profileHandler.ReplacePhoto)

	// --- Admin-only ---
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	v1.GET("/report", scheduleHandler.Report, adminOnly)
	v1.GET("/accounts", accountHandler.List, adminOnly)
	v1.PUT("/accounts/:id/role", accountHandler.UpdateRole, adminOnly)

	v1.GET("/patients", patientHandler.List, adminOnly)
	v1.POST("/patients", patientHandler.Create, adminOnly)
	v1.GET("/patients/:id", patientHandler.Get, adminOnly)
	v1.PUT("/patients/:id", patientHandler.Update, adminOnly)
	v1.DELETE("/patients/:id", patientHandler.Delete, adminOnly)

	return e
}
