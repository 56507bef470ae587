package sheet

//go:generate go run go.uber.org/mock/mockgen -source=./sheet.go -destination=./mocks/sheet_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"workation/config"
	"workation/infras/otel"
	"workation/shared/constant"

	"github.com/rs/zerolog/log"
)

// Mirror is the remote sheet webhook the inquiry store mirrors into. The
// write side is fire-and-forget: the response status and body are ignored.
// The read side expects a JSON array of loosely-shaped row objects.
type Mirror interface {
	Push(ctx context.Context, url string, row map[string]any) error
	Fetch(ctx context.Context, url string) ([]map[string]any, error)
}

type mirrorImpl struct {
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Mirror {
	timeout := cfg.Mirror.TimeoutSeconds
	if timeout <= 0 {
		timeout = constant.DefaultMirrorTimeoutSeconds
	}

	return &mirrorImpl{
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		otel:   ot,
	}
}

// Push POSTs one row to the mirror endpoint. The response is drained and
// discarded; a reachable endpoint returning an error status still counts as
// delivered, matching the original no-cors submission.
func (m *mirrorImpl) Push(ctx context.Context, url string, row map[string]any) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".sheet.Push")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelMirrorURLAttributeKey, url)

	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal mirror row: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mirror request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := m.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to push row to mirror: %w", err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close mirror response body")
		}
	}()

	return nil
}

// Fetch GETs the full row array from the mirror endpoint.
func (m *mirrorImpl) Fetch(ctx context.Context, url string) (rows []map[string]any, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".sheet.Fetch")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelMirrorURLAttributeKey, url)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build mirror request: %w", err)
	}

	resp, err := m.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows from mirror: %w", err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close mirror response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("mirror returned status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode mirror rows: %w", err)
	}

	return rows, nil
}
