package impl

import (
	"context"

	"salesinsight/internal/domain/lifecycle"
	"salesinsight/internal/usecase"

	"go.uber.org/fx"
)

// Module provides the use case FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewAuthService,
		NewAdminService,
		NewCatalogService,
		NewForecastService,
		NewTrainingService,
		NewOfferService,
	),
	fx.Invoke(registerBootstrap),
)

// registerBootstrap seeds the configured admin before the servers start accepting requests.
func registerBootstrap(lc fx.Lifecycle, auth usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return auth.BootstrapAdmin(ctx)
		},
	})
}
