package main

import (
	"context"
	"log/slog"
	"os"

	"salesinsight/config"
	"salesinsight/internal/delivery"
	"salesinsight/internal/delivery/api"
	"salesinsight/internal/delivery/api/middleware"
	"salesinsight/internal/delivery/api/router/handler"
	"salesinsight/internal/infra/archive"
	"salesinsight/internal/infra/auth"
	"salesinsight/internal/infra/forecast"
	"salesinsight/internal/infra/lock"
	logs "salesinsight/internal/infra/log"
	"salesinsight/internal/infra/metrics"
	"salesinsight/internal/infra/persistence"
	"salesinsight/internal/infra/pubsub"
	"salesinsight/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
		lock.Module,
		forecast.Module,
		pubsub.Module,
		archive.Module,
	)
}

func injectUsecase() fx.Option {
	return impl.Module
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewCompanyHandler,
			handler.NewOfferHandler,
			handler.NewTrainingHandler,
			handler.NewInfoHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
