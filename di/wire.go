//go:build wireinject
// +build wireinject

package di

import (
	"ridebook/config"
	"ridebook/infras/kafka"
	"ridebook/infras/mail"
	"ridebook/infras/otel"
	"ridebook/infras/postgres"
	"ridebook/infras/redis"
	"ridebook/infras/stripe"
	bookingHandler "ridebook/internal/handlers/booking"
	contactHandler "ridebook/internal/handlers/contact"
	webhookHandler "ridebook/internal/handlers/webhook"
	"ridebook/shared/cache"
	"ridebook/transport/http"
	"ridebook/transport/http/middleware"
	"ridebook/transport/http/router"

	bookingRepository "ridebook/internal/domains/booking/repository"
	bookingService "ridebook/internal/domains/booking/service"
	contactRepository "ridebook/internal/domains/contact/repository"
	contactService "ridebook/internal/domains/contact/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	stripe.New,
	mail.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	contactHandler.New,
	webhookHandler.New,
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
