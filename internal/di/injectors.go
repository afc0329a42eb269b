//go:build wireinject
// +build wireinject

package di

import (
	"clarity/internal"
	"clarity/internal/controllers"
	"clarity/internal/gateway"
	"clarity/internal/keeper"
	"clarity/internal/providers"
	"clarity/internal/services"
	"clarity/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		gateway.NewContentStore,
		gateway.NewRegistry,
		services.NewClock,
		services.NewLedgerService,

		keeper.NewZstdCompressor,
		keeper.NewSnapshotStore,
		keeper.NewSnapshotManager,
		keeper.NewScheduler,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
