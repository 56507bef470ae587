//go:build wireinject
// +build wireinject

package di

import (
	"workation/config"
	"workation/infras/jwt"
	"workation/infras/mq"
	"workation/infras/otel"
	"workation/infras/redis"
	"workation/infras/sheet"
	adminHandler "workation/internal/handlers/admin"
	authHandler "workation/internal/handlers/auth"
	healthHandler "workation/internal/handlers/health"
	inquiryHandler "workation/internal/handlers/inquiry"
	"workation/shared/cache"
	"workation/transport/http"
	"workation/transport/http/middleware"
	"workation/transport/http/router"

	"workation/internal/domains/inquiry/refresh"
	inquiryRepository "workation/internal/domains/inquiry/repository"
	inquiryService "workation/internal/domains/inquiry/service"

	authService "workation/internal/domains/auth/service"
	settingsRepository "workation/internal/domains/settings/repository"
	settingsService "workation/internal/domains/settings/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	sheet.New,
	mq.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisKV,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
	refresh.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	inquiryDomain,
	settingsDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	inquiryHandler.New,
	authHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
