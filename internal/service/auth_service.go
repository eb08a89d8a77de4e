package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"rental-hub/internal/domain"
	"rental-hub/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrRateLimited        = errors.New("rate limited")
)

// AuthService coordina registro y autenticación de usuarios.
type AuthService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	limiter LoginRateLimiter
}

func NewAuthService(logger *zap.Logger, users repository.UserRepository, limiter LoginRateLimiter) *AuthService {
	if limiter == nil {
		limiter = NewLoginRateLimiter(loginWindow, loginMaxAttempts)
	}
	return &AuthService{
		logger:  logger,
		users:   users,
		limiter: limiter,
	}
}

// Register crea un usuario nuevo con el password hasheado via bcrypt.
// La validación de formato del email queda en el servidor, igual que el
// resto de reglas: el cliente no valida nada por su cuenta.
func (s *AuthService) Register(ctx context.Context, emailAddr, password, userType string) (domain.User, error) {
	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	userType = strings.ToLower(strings.TrimSpace(userType))

	if emailAddr == "" || password == "" || userType == "" {
		return domain.User{}, ErrMissingFields
	}
	if !domain.ValidUserType(userType) {
		return domain.User{}, ErrInvalidUserType
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	id, err := s.users.Create(ctx, emailAddr, string(hashBytes), userType)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, err
	}

	return domain.User{ID: id, Email: emailAddr, UserType: userType}, nil
}

// Authenticate valida credenciales y devuelve el usuario sin el hash.
func (s *AuthService) Authenticate(ctx context.Context, emailAddr, password string) (domain.User, error) {
	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	if s.limiter != nil && !s.limiter.Allow(emailAddr) {
		return domain.User{}, ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
