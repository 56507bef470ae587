package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"workation/infras/otel"
	"workation/infras/sheet"
	"workation/internal/domains/inquiry/model"
	settingsRepo "workation/internal/domains/settings/repository"
	"workation/shared/cache"
	"workation/shared/constant"

	"github.com/rs/zerolog/log"
)

// Inquiry is the append-only local inquiry store with a best-effort remote
// mirror. The local persisted collection is the system of record; the mirror
// is analytics/backup only and never affects the caller's outcome.
type Inquiry interface {
	Append(ctx context.Context, record model.Inquiry) error
	LoadAll(ctx context.Context) ([]model.Inquiry, error)
}

type repositoryImpl struct {
	kv       cache.KV
	mirror   sheet.Mirror
	settings settingsRepo.Settings
	otel     otel.Otel
}

func New(kv cache.KV, mirror sheet.Mirror, settings settingsRepo.Settings, ot otel.Otel) Inquiry {
	return &repositoryImpl{
		kv:       kv,
		mirror:   mirror,
		settings: settings,
		otel:     ot,
	}
}

// Append adds the record to the local collection, then mirrors it remotely in
// a detached task. The local write completes before the mirror attempt is
// issued, so local durability never depends on network availability. The
// collection lives in a single store slot; read-modify-write is not atomic
// and a single active writer is assumed.
func (r *repositoryImpl) Append(ctx context.Context, record model.Inquiry) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Append")
	defer scope.End()
	defer scope.TraceIfError(err)

	records, err := r.loadLocal(ctx)
	if err != nil {
		return fmt.Errorf("failed to load local collection: %w", err)
	}

	records = append(records, record)

	if err = r.kv.Save(ctx, model.StoreKey, records, 0); err != nil {
		return fmt.Errorf("failed to persist inquiry collection: %w", err)
	}

	go r.mirrorRecord(context.WithoutCancel(ctx), record)

	return nil
}

// mirrorRecord pushes one record to the configured mirror endpoint,
// at-most-once with no retry. Failure is observable only through the log and
// trace side channel, never through the caller's control flow.
func (r *repositoryImpl) mirrorRecord(ctx context.Context, record model.Inquiry) {
	url, err := r.settings.MirrorURL(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve mirror URL, skipping mirror write")

		return
	}

	if url == "" {
		return
	}

	if err := r.mirror.Push(ctx, url, record.ToRow()); err != nil {
		log.Error().Err(err).Int64("id", record.ID).Msg("failed to mirror inquiry, local copy kept")
	}
}

// LoadAll returns the current collection. With a mirror configured the remote
// copy is preferred; any remote failure degrades silently to the local
// collection. Order is unspecified at this layer.
func (r *repositoryImpl) LoadAll(ctx context.Context) (records []model.Inquiry, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".LoadAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	url, err := r.settings.MirrorURL(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve mirror URL, reading local collection")
	} else if url != "" {
		rows, fetchErr := r.mirror.Fetch(ctx, url)
		if fetchErr == nil {
			records = make([]model.Inquiry, len(rows))
			for i, row := range rows {
				records[i] = model.Normalize(row)
			}

			return records, nil
		}

		log.Warn().Err(fetchErr).Msg("mirror read failed, falling back to local collection")
	}

	return r.loadLocal(ctx)
}

// loadLocal reads the persisted collection. A missing slot reads as an empty
// collection; a corrupt one does too, with a warning, so the dashboard always
// has something to render.
func (r *repositoryImpl) loadLocal(ctx context.Context) ([]model.Inquiry, error) {
	var records []model.Inquiry

	err := r.kv.Get(ctx, model.StoreKey, &records)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return []model.Inquiry{}, nil
		}

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			log.Warn().Err(err).Msg("local inquiry collection is corrupt, treating as empty")

			return []model.Inquiry{}, nil
		}

		return nil, fmt.Errorf("failed to read local collection: %w", err)
	}

	return records, nil
}
