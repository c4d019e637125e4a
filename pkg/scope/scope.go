package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nextstep/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Manager issues and verifies the JWTs that carry the authenticated user
// identity. The core trusts whatever identity the token asserts; credential
// checks happen upstream.
type Manager interface {
	Generate(userID string) (string, error)
	Verify(token string) (model.Scope, error)
}

type claims struct {
	jwt.RegisteredClaims
}

type implManager struct {
	secret []byte
	expiry time.Duration
}

// NewManager creates a JWT scope manager with the given signing secret.
func NewManager(secret string, expiry time.Duration) Manager {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &implManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate signs a token asserting the given user identity.
func (m *implManager) Generate(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	})
	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning the owner scope.
func (m *implManager) Verify(tokenStr string) (model.Scope, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Scope{}, ErrExpiredToken
		}
		return model.Scope{}, ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Subject == "" {
		return model.Scope{}, ErrInvalidToken
	}

	return model.Scope{UserID: c.Subject}, nil
}
