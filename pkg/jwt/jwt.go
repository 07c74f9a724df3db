package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiry is the lifetime of an issued access token
const DefaultExpiry = time.Hour

var (
	// ErrSecretNotConfigured is returned by every operation when the manager
	// was built without a signing secret
	ErrSecretNotConfigured = errors.New("jwt signing secret is not configured")

	// ErrInvalidToken covers bad signatures, malformed tokens and expired tokens
	ErrInvalidToken = errors.New("token is invalid or expired")
)

// Claims represents JWT claims structure
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations
type Manager struct {
	secret string
	expiry time.Duration
	now    func() time.Time
}

// Option tweaks a Manager at construction time
type Option func(*Manager)

// WithExpiry overrides DefaultExpiry
func WithExpiry(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.expiry = d
		}
	}
}

// WithClock replaces time.Now, used by tests to move past expiry
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates new JWT manager
func NewManager(secret string, opts ...Option) *Manager {
	m := &Manager{
		secret: secret,
		expiry: DefaultExpiry,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configured reports whether a signing secret is present
func (m *Manager) Configured() bool {
	return m.secret != ""
}

// Expiry returns the lifetime applied to issued tokens
func (m *Manager) Expiry() time.Duration {
	return m.expiry
}

// Issue signs a token carrying username, valid for Expiry().
func (m *Manager) Issue(username string) (string, error) {
	if !m.Configured() {
		return "", ErrSecretNotConfigured
	}

	now := m.now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the decoded claims.
// Any failure other than a missing secret is reported as ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	if !m.Configured() {
		return nil, ErrSecretNotConfigured
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	},
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
