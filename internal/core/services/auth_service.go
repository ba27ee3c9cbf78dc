package services

import (
	"context"
	"errors"
	"log"
	"time"

	"port-russell-api/internal/adapters/persistence/models"
	"port-russell-api/internal/adapters/persistence/repositories"
	"port-russell-api/internal/config"
	"port-russell-api/internal/pkg/password"
	"port-russell-api/internal/pkg/token"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrPasswordTooShort   = errors.New("password too short")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User  *models.UserResponse `json:"user"`
	Token string               `json:"token"`
}

// Register registers a new user. The plaintext password is hashed before
// anything is persisted and never appears in the response.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.UserResponse, error) {
	if !password.Validate(input.Password) {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Unique index may still fire between the exists check and the
		// insert; report it the same way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Username)
	return user.ToResponse(), nil
}

// Login authenticates by email and password and mints a bearer token
// with the given validity. On any failure no token is issued.
func (s *AuthService) Login(ctx context.Context, input *LoginInput, ttl time.Duration) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	signed, err := token.Generate(user.ID, s.cfg.JWT.Secret, ttl)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Username)

	return &AuthResponse{
		User:  user.ToResponse(),
		Token: signed,
	}, nil
}

// SessionTTL is the validity window for browser cookie sessions.
func (s *AuthService) SessionTTL() time.Duration {
	return time.Duration(s.cfg.JWT.SessionTokenDays) * 24 * time.Hour
}

// APITTL is the validity window for tokens handed to API clients.
func (s *AuthService) APITTL() time.Duration {
	return time.Duration(s.cfg.JWT.APITokenDays) * 24 * time.Hour
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
