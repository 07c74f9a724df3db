package service

import (
	"context"
	"crypto/subtle"

	"github.com/rs/zerolog/log"

	"blogpost-backend/internal/config"
	"blogpost-backend/internal/domains/auth/model"
	"blogpost-backend/pkg/jwt"
)

// TokenIssuer is the part of *jwt.Manager the login flow needs
type TokenIssuer interface {
	Configured() bool
	Issue(username string) (string, error)
}

type ServiceInterface interface {
	// Login checks the fixed admin credentials and issues a bearer token.
	// A missing signing secret is reported before the body is looked at.
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	admin  config.AdminConfig
	tokens TokenIssuer
}

func NewAuthService(admin config.AdminConfig, tokens TokenIssuer) ServiceInterface {
	return &authService{
		admin:  admin,
		tokens: tokens,
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if !s.tokens.Configured() {
		return nil, jwt.ErrSecretNotConfigured
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// both comparisons always run
	userOK := equal(req.Username, s.admin.Username)
	passOK := equal(req.Password, s.admin.Password)
	if !userOK || !passOK || s.admin.Username == "" {
		log.Ctx(ctx).Warn().Str("username", req.Username).Msg("Rejected login")
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(req.Username)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to issue token")
		return nil, err
	}

	log.Ctx(ctx).Info().Str("username", req.Username).Msg("Admin logged in")
	return &model.LoginResponse{Token: token}, nil
}
