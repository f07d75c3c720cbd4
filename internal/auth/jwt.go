package auth

import (
	"errors"
	"time"

	"capstack-api/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager issues and verifies session tokens. The signing secret is
// process-wide configuration: injected once here, never read from
// ambient state.
type Manager struct {
	secret     []byte
	sessionTTL time.Duration
}

func NewManager(cfg config.AuthConfig) (*Manager, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{
		secret:     []byte(cfg.JWTSecret),
		sessionTTL: ttl,
	}, nil
}

// Issue signs a session token for the given identity. Guest and registered
// sessions share one token shape; only the IsGuest claim differs.
func (m *Manager) Issue(now time.Time, userID, email, name string, guest bool) (string, error) {
	if userID == "" {
		return "", errors.New("userID is required")
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTTL)),
			ID:        uuid.NewString(),
		},
		UserID:  userID,
		Email:   email,
		Name:    name,
		IsGuest: guest,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a session token at the given instant.
func (m *Manager) Verify(tokenString string, now time.Time) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithLeeway(30*time.Second), // clock skew tolerance
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)

	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}

	if claims.UserID == "" {
		return Claims{}, errors.New("userId missing")
	}

	return claims, nil
}
