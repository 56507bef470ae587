package service

import (
	"context"
	"fmt"
	"strconv"
	"workation/config"
	"workation/infras/mq"
	"workation/infras/otel"
	"workation/internal/domains/inquiry/analytics"
	"workation/internal/domains/inquiry/model"
	"workation/internal/domains/inquiry/model/dto"
	"workation/internal/domains/inquiry/repository"
	"workation/shared"
	"workation/shared/cache"
	"workation/shared/constant"
	"workation/shared/failure"
	"workation/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetInquiry     = "inquiry:get"
	cacheGetAllInquiry  = "inquiry:gets"
	cacheStatsInquiry   = "inquiry:stats"
	eventInquiryCreated = "inquiry.created"
)

type Inquiry interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) error
	GetAll(ctx context.Context, criteria analytics.Criteria) (dto.GetInquiriesResponse, error)
	Get(ctx context.Context, id int64) (dto.InquiryResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Refresh(ctx context.Context) error
}

type serviceImpl struct {
	repo      repository.Inquiry
	cfg       *config.Config
	kv        cache.KV
	publisher mq.Publisher
	otel      otel.Otel
}

func New(repo repository.Inquiry, cfg *config.Config, kv cache.KV, publisher mq.Publisher, ot otel.Otel) Inquiry {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		kv:        kv,
		publisher: publisher,
		otel:      ot,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	record := req.ToModel()

	if err = s.repo.Append(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to append inquiry")

		return fmt.Errorf("failed to append inquiry: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.PublishJSON(c, eventInquiryCreated, record.ToRow()); err != nil {
			log.Error().Err(err).Int64("id", record.ID).Msg("failed to publish inquiry created event")
		}

		shared.InvalidateCaches(c, s.kv, cacheGetAllInquiry)
		shared.InvalidateCaches(c, s.kv, cacheStatsInquiry)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, criteria analytics.Criteria) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithCriteria(cacheGetAllInquiry, criteria)

	err = s.kv.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiries")

		return res, nil
	}

	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		// The dashboard always renders; a broken store degrades to empty.
		log.Error().Err(err).Msg("failed to load inquiries, rendering empty view")

		res.FromModels([]model.Inquiry{})
		res.Degraded = true

		return res, nil
	}

	view := analytics.ApplyFilters(analytics.SortNewestFirst(records), criteria, timezone.Now())
	res.FromModels(view)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kv.Save(c, cacheKey, res, s.cfg.Store.CacheTTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInquiry, strconv.FormatInt(id, 10))

	err = s.kv.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiry")

		return res, nil
	}

	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load inquiries")

		return res, fmt.Errorf("failed to load inquiries: %w", err)
	}

	for _, record := range records {
		if record.ID == id {
			res.FromModel(record)

			go func() {
				c := context.WithoutCancel(ctx)

				if err := s.kv.Save(c, cacheKey, res, s.cfg.Store.CacheTTL); err != nil {
					log.Error().Err(err).Msg("failed to save inquiry to cache")
				}
			}()

			return res, nil
		}
	}

	return res, failure.NotFound("inquiry not found") // nolint:wrapcheck
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.kv.Get(ctx, cacheStatsInquiry, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStatsInquiry).Msg("cache hit for stats")

		return res, nil
	}

	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load inquiries, rendering empty stats")

		res.FromStats(analytics.Stats{})
		res.Degraded = true

		return res, nil
	}

	res.FromStats(analytics.ComputeStats(records, timezone.Now()))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kv.Save(c, cacheStatsInquiry, res, s.cfg.Store.CacheTTL); err != nil {
			log.Error().Err(err).Msg("failed to save stats to cache")
		}
	}()

	return res, nil
}

// Refresh drops the derived-view caches and recomputes the default dashboard
// view from the store, so an open dashboard observes new submissions.
func (s *serviceImpl) Refresh(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	shared.InvalidateCaches(ctx, s.kv, cacheGetAllInquiry)
	shared.InvalidateCaches(ctx, s.kv, cacheStatsInquiry)

	if _, err = s.Stats(ctx); err != nil {
		return fmt.Errorf("failed to refresh stats: %w", err)
	}

	if _, err = s.GetAll(ctx, analytics.Criteria{}); err != nil {
		return fmt.Errorf("failed to refresh inquiries: %w", err)
	}

	return nil
}
