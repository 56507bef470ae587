package refresh

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workation/config"
	"workation/internal/domains/inquiry/analytics"
	"workation/internal/domains/inquiry/model/dto"
)

type stubService struct {
	refreshes atomic.Int32
	err       error
}

func (s *stubService) Create(_ context.Context, _ dto.CreateInquiryRequest) error {
	return nil
}

func (s *stubService) GetAll(_ context.Context, _ analytics.Criteria) (dto.GetInquiriesResponse, error) {
	return dto.GetInquiriesResponse{}, nil
}

func (s *stubService) Get(_ context.Context, _ int64) (dto.InquiryResponse, error) {
	return dto.InquiryResponse{}, nil
}

func (s *stubService) Stats(_ context.Context) (dto.StatsResponse, error) {
	return dto.StatsResponse{}, nil
}

func (s *stubService) Refresh(_ context.Context) error {
	s.refreshes.Add(1)
	return s.err
}

func newTestRefresher(svc *stubService, interval time.Duration) *Refresher {
	return &Refresher{
		service:  svc,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func TestRefresher_New(t *testing.T) {
	tests := []struct {
		name         string
		seconds      int
		wantInterval time.Duration
	}{
		{
			name:         "configured interval",
			seconds:      5,
			wantInterval: 5 * time.Second,
		},
		{
			name:         "zero falls back to default",
			seconds:      0,
			wantInterval: 30 * time.Second,
		},
		{
			name:         "negative falls back to default",
			seconds:      -1,
			wantInterval: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Dashboard.RefreshIntervalSeconds = tt.seconds

			r := New(&stubService{}, cfg)

			assert.Equal(t, tt.wantInterval, r.interval)
		})
	}
}

func TestRefresher_StartTicks(t *testing.T) {
	svc := &stubService{}
	r := newTestRefresher(svc, 10*time.Millisecond)

	r.Start()
	time.Sleep(55 * time.Millisecond)
	r.Stop()

	ticked := svc.refreshes.Load()
	assert.GreaterOrEqual(t, ticked, int32(2))

	// No ticks may arrive after Stop returns.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, ticked, svc.refreshes.Load())
}

func TestRefresher_FailedTickKeepsTicking(t *testing.T) {
	svc := &stubService{err: assert.AnError}
	r := newTestRefresher(svc, 10*time.Millisecond)

	r.Start()
	time.Sleep(55 * time.Millisecond)
	r.Stop()

	assert.GreaterOrEqual(t, svc.refreshes.Load(), int32(2))
}

func TestRefresher_StopIdempotent(t *testing.T) {
	svc := &stubService{}
	r := newTestRefresher(svc, 10*time.Millisecond)

	r.Start()

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Stop()
		}()
	}
	wg.Wait()
}

func TestRefresher_StopWithoutStart(t *testing.T) {
	r := newTestRefresher(&stubService{}, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		r.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked without a running refresher")
	}
}

func TestRefresher_StartTwice(t *testing.T) {
	svc := &stubService{}
	r := newTestRefresher(svc, 10*time.Millisecond)

	r.Start()
	r.Start()
	time.Sleep(25 * time.Millisecond)
	r.Stop()
}
