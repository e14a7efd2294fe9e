package bootstrap

import (
	"padel-club-api/internal/pkg/clock"
	"padel-club-api/internal/pkg/config"
	"padel-club-api/internal/store"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

func NewStore(cfg config.Config, clk clock.Clock) (*store.Store, error) {
	return store.New(cfg.Store, cfg.Club, clk)
}
