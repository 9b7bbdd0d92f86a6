package impl

import (
	"context"
	"time"

	"mealmarket/config"
)

const defaultStoreTimeout = 5 * time.Second

// storeBound caps a single store round trip.
type storeBound time.Duration

func newStoreBound(cfg *config.Config) storeBound {
	if cfg == nil || cfg.Marketplace.StoreTimeout <= 0 {
		return storeBound(defaultStoreTimeout)
	}

	return storeBound(cfg.Marketplace.StoreTimeout)
}

func (b storeBound) context(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(b))
}
