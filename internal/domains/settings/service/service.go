package service

import (
	"context"
	"fmt"
	"workation/infras/otel"
	"workation/internal/domains/settings/model/dto"
	"workation/internal/domains/settings/repository"
	"workation/shared/constant"

	"github.com/rs/zerolog/log"
)

type Settings interface {
	GetMirrorSettings(ctx context.Context) (dto.MirrorSettingsResponse, error)
	UpdateMirrorSettings(ctx context.Context, req dto.UpdateMirrorSettingsRequest) error
}

type serviceImpl struct {
	repo repository.Settings
	otel otel.Otel
}

func New(repo repository.Settings, ot otel.Otel) Settings {
	return &serviceImpl{
		repo: repo,
		otel: ot,
	}
}

func (s *serviceImpl) GetMirrorSettings(ctx context.Context) (res dto.MirrorSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMirrorSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	url, err := s.repo.MirrorURL(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve mirror URL")

		return res, fmt.Errorf("failed to resolve mirror URL: %w", err)
	}

	res.FromURL(url)

	return res, nil
}

// UpdateMirrorSettings stores the mirror endpoint. An empty URL disables
// mirroring and keeps the store local-only.
func (s *serviceImpl) UpdateMirrorSettings(ctx context.Context, req dto.UpdateMirrorSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMirrorSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.SaveMirrorURL(ctx, req.URL); err != nil {
		log.Error().Err(err).Msg("failed to save mirror URL")

		return fmt.Errorf("failed to save mirror URL: %w", err)
	}

	return nil
}
