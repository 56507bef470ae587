package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"workation/config"
	"workation/infras/jwt"
	"workation/infras/otel"
	"workation/internal/domains/auth/model/dto"
	"workation/shared/constant"
	"workation/shared/failure"
	"workation/shared/password"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, ot otel.Otel, jwtService jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		otel:       ot,
		jwtService: jwtService,
	}
}

// Login exchanges the shared admin password for a token pair. There is a
// single admin identity; each successful login gets its own session id.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err := s.verifyPassword(req.Password); err != nil {
		log.Warn().Msg("admin login attempt with wrong password")

		return res, failure.Unauthorized("invalid password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(uuid.NewString(), constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// verifyPassword checks against the bcrypt hash when one is configured and
// falls back to a constant-time comparison with the plain configured password.
func (s *serviceImpl) verifyPassword(candidate string) error {
	if hash := s.cfg.App.Admin.PasswordHash; hash != "" {
		return password.Verify(candidate, hash) // nolint:wrapcheck
	}

	configured := s.cfg.App.Admin.Password
	if configured == "" {
		return password.ErrInvalidPassword
	}

	if subtle.ConstantTimeCompare([]byte(candidate), []byte(configured)) != 1 {
		return password.ErrInvalidPassword
	}

	return nil
}
