package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/resume-builder/internal/config"
)

// tokenIssuer is the iss claim of every API token.
const tokenIssuer = "resume-builder"

// TokenService issues and checks HS256 API tokens.
type TokenService struct {
	config *config.JWTConfig
	now    func() time.Time
}

// NewTokenService creates a token service from cfg.
func NewTokenService(cfg *config.JWTConfig) *TokenService {
	return &TokenService{config: cfg, now: time.Now}
}

// GenerateToken signs a token for subject, valid for the configured TTL.
func (s *TokenService) GenerateToken(subject string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, fmt.Errorf("token subject is empty")
	}
	now := s.now()
	expiresAt := now.Add(s.config.TTL)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken verifies signature, expiry and issuer and returns the subject.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token string is empty")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(s.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
		return claims.Subject, nil
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", fmt.Errorf("invalid token signature: %w", err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", fmt.Errorf("token expired: %w", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", fmt.Errorf("malformed token: %w", err)
	default:
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
}
