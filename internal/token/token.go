// Package token issues and verifies the signed session credential
// carried in the auth cookie.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"udaan-cms/internal/domain"
)

// Service signs a compact claim set {id, username, role} with a
// server-held secret. Verification checks signature and expiry
// atomically; there is no refresh mechanism.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. ttl is the credential lifetime
// from issuance.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Sign issues a credential for the given identity.
func (s *Service) Sign(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded
// identity. Any failure maps to domain.ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*domain.Identity, error) {
	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Identity{
		ID:       claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
