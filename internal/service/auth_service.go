package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"udaan-cms/internal/domain"
	"udaan-cms/internal/metrics"
	"udaan-cms/internal/repository"
	"udaan-cms/internal/token"
	"udaan-cms/internal/validator"
)

// AuthService verifies credentials against stored bcrypt hashes and
// issues session credentials.
type AuthService struct {
	users     repository.UserRepository
	tokens    *token.Service
	validator *validator.Validator
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *token.Service, v *validator.Validator) *AuthService {
	return &AuthService{users: users, tokens: tokens, validator: v}
}

// Login verifies the username/password pair and returns the identity
// plus a signed session credential. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Identity, string, error) {
	if err := s.validator.ValidateCredentials(username, password); err != nil {
		return nil, "", fmt.Errorf("validate credentials: %w", err)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.ObserveLogin("failure")
			return nil, "", domain.ErrInvalidCredentials
		}
		metrics.ObserveLogin("error")
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.ObserveLogin("failure")
		return nil, "", domain.ErrInvalidCredentials
	}

	identity := domain.Identity{ID: user.ID, Username: user.Username, Role: user.Role}
	signed, err := s.tokens.Sign(identity)
	if err != nil {
		metrics.ObserveLogin("error")
		return nil, "", err
	}

	metrics.ObserveLogin("success")
	return &identity, signed, nil
}

// Validate verifies a session credential and returns its identity.
func (s *AuthService) Validate(tokenString string) (*domain.Identity, error) {
	return s.tokens.Verify(tokenString)
}

// HashPassword produces the bcrypt hash stored for an account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
