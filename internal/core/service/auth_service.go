package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AccountRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a standard-role account. Usernames are unique; the
// repository surfaces domain.ErrAccountExists on a duplicate.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleStandard,
		ProfilePhoto: domain.DefaultProfilePhoto,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, account)
}

// Login verifies the credentials and returns a signed token plus the account.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":      account.ID,
		"username": account.Username,
		"role":     account.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
