package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"workation/config"
	"workation/infras/otel"
	"workation/shared/cache"
	"workation/shared/constant"
)

// KeyMirrorURL is the store slot holding the runtime-configured mirror
// endpoint, shared with the form-submission surface.
const KeyMirrorURL = "adminScriptUrl"

// Settings persists operator-tunable values in the origin-scoped store.
type Settings interface {
	MirrorURL(ctx context.Context) (string, error)
	SaveMirrorURL(ctx context.Context, url string) error
}

type repositoryImpl struct {
	kv   cache.KV
	cfg  *config.Config
	otel otel.Otel
}

func New(kv cache.KV, cfg *config.Config, ot otel.Otel) Settings {
	return &repositoryImpl{
		kv:   kv,
		cfg:  cfg,
		otel: ot,
	}
}

// MirrorURL returns the configured mirror endpoint. The stored value wins
// over the environment default; an empty result means local-only mode, which
// is a valid operating state, not an error.
func (r *repositoryImpl) MirrorURL(ctx context.Context) (url string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".MirrorURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.kv.Get(ctx, KeyMirrorURL, &url)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return r.cfg.Mirror.URL, nil
		}

		return "", fmt.Errorf("failed to read mirror URL: %w", err)
	}

	return url, nil
}

func (r *repositoryImpl) SaveMirrorURL(ctx context.Context, url string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SaveMirrorURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.kv.Save(ctx, KeyMirrorURL, url, 0); err != nil {
		return fmt.Errorf("failed to save mirror URL: %w", err)
	}

	return nil
}
