package refresh

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
	"workation/config"
	"workation/internal/domains/inquiry/service"
	"workation/shared/constant"

	"github.com/rs/zerolog/log"
)

// Refresher re-derives the dashboard view on a fixed interval for as long as
// it is running. Ticks never overlap: each refresh runs to completion on the
// refresher's own goroutine before the next tick is observed. Stop is
// idempotent and must be called on teardown so no recurring task outlives
// the dashboard.
type Refresher struct {
	service  service.Inquiry
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
	done     chan struct{}
}

func New(svc service.Inquiry, cfg *config.Config) *Refresher {
	seconds := cfg.Dashboard.RefreshIntervalSeconds
	if seconds <= 0 {
		seconds = constant.DefaultRefreshIntervalSeconds
	}

	return &Refresher{
		service:  svc,
		interval: time.Duration(seconds) * time.Second,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the refresh loop. It returns immediately and is a no-op if
// the refresher is already running.
func (r *Refresher) Start() {
	if !r.started.CompareAndSwap(false, true) {
		return
	}

	log.Info().Dur("interval", r.interval).Msg("Starting dashboard refresher")

	go r.run()
}

func (r *Refresher) run() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.refresh()
		}
	}
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), r.interval)
	defer cancel()

	if err := r.service.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("dashboard refresh failed, next tick will retry")
	}
}

// Stop cancels the refresh loop and waits for it to exit.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})

	if r.started.Load() {
		<-r.done
	}

	log.Info().Msg("Dashboard refresher stopped")
}
