// Package service implements signup and login on top of bcrypt password
// hashes and signed access tokens.
package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/insideimaging/insideimaging-backend/internal/auth/domain"
	"github.com/insideimaging/insideimaging-backend/internal/auth/jwt"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
	"github.com/insideimaging/insideimaging-backend/pkg/messaging"
)

// UserStore persists user accounts
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Publisher sends account events to the message broker
type Publisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// AuthService handles authentication logic
type AuthService struct {
	users      UserStore
	jwtManager *jwt.Manager
	publisher  Publisher
	log        *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, jwtManager *jwt.Manager, publisher Publisher, log *logger.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
		publisher:  publisher,
		log:        log,
	}
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the token and public account fields
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TokenType   string    `json:"token_type"`
	User        *UserInfo `json:"user"`
}

// UserInfo represents public account information
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Signup creates a new account and returns a signed token
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password")
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, messaging.EventUserRegistered, messaging.UserRegisteredEvent{
		UserID:   user.ID,
		Username: user.Username,
	}); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to publish registration event")
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")

	return s.respond(user)
}

// Login authenticates a user and returns a signed token
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		// the caller must not learn whether the account exists
		return nil, apperrors.InvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	return s.respond(user)
}

func (s *AuthService) respond(user *domain.User) (*AuthResponse, error) {
	token, err := s.jwtManager.Generate(user.ID, user.Username)
	if err != nil {
		return nil, apperrors.Internal("failed to generate token")
	}
	return &AuthResponse{
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt,
		TokenType:   token.TokenType,
		User: &UserInfo{
			ID:       user.ID,
			Username: user.Username,
		},
	}, nil
}
