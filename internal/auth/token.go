package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity facts embedded in an access token.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Config holds the process-wide token settings, fixed at startup.
type Config struct {
	Secret []byte
	TTL    time.Duration
}

// TokenManager issues and verifies HS256-signed bearer tokens. It holds
// no per-request state; verification is pure and does no I/O.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager validates cfg and returns a manager. A missing secret
// or non-positive TTL is a configuration error and should abort startup.
func NewTokenManager(cfg Config) (*TokenManager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", cfg.TTL)
	}
	return &TokenManager{secret: cfg.Secret, ttl: cfg.TTL}, nil
}

// Issue signs a token for subject with the configured lifetime.
func (m *TokenManager) Issue(subject, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry against the current clock and
// returns the embedded claims. All failure modes collapse to
// ErrInvalidToken so callers cannot leak the root cause.
func (m *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
