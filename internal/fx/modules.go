package fx

import (
	"league-client/internal/config"
	"league-client/internal/ddragon"
	"league-client/internal/logger"
	"league-client/internal/riot"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// static data catalog
	fx.Provide(ddragon.New),
	// api client
	fx.Provide(riot.NewClient),
)
