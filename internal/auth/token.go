package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperr "chatserver/pkg/errors"
)

// Identity is a verified caller. A nil *Identity means Guest.
type Identity struct {
	Username string
}

// TokenService issues and validates the bearer tokens the client sends
// in the Authorization header. Tokens carry the username as subject and
// expire after a fixed lifetime (1 hour by default).
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	if lifetime <= 0 {
		lifetime = time.Hour
	}
	return &TokenService{secret: []byte(secret), lifetime: lifetime}
}

func (t *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.lifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeInternal, "could not sign token", err)
	}
	return signed, nil
}

// Validate returns the username the token was issued for.
func (t *TokenService) Validate(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", apperr.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", apperr.ErrInvalidToken
	}
	return claims.Subject, nil
}
