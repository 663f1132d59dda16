package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/trendify-api/internal/application/ports"
	"github.com/jhoicas/trendify-api/pkg/logger"
)

// featuredKey única key del snapshot de productos destacados.
const featuredKey = "featured_products"

// featuredTTL vigencia del snapshot.
const featuredTTL = 5 * time.Minute

var _ ports.FeaturedCache = (*FeaturedProductsCache)(nil)

// FeaturedProductsCache implementación del puerto FeaturedCache sobre Redis.
// Un fallo de Redis nunca rompe el read path: se reporta miss y se sigue con
// la base; los fallos de escritura/invalidación solo se loguean.
type FeaturedProductsCache struct {
	rdb *redis.Client
	log *logger.Logger
}

// NewFeaturedProductsCache construye el cache.
func NewFeaturedProductsCache(rdb *redis.Client, log *logger.Logger) *FeaturedProductsCache {
	return &FeaturedProductsCache{rdb: rdb, log: log}
}

// Get devuelve el snapshot si existe.
func (c *FeaturedProductsCache) Get(ctx context.Context) ([]byte, bool, error) {
	data, err := c.rdb.Get(ctx, featuredKey).Bytes()
	switch {
	case err == nil:
		return data, true, nil
	case errors.Is(err, redis.Nil):
		return nil, false, nil
	default:
		c.log.Warn().Err(err).Msg("cache destacados: fallo de lectura, se sigue con la base")
		return nil, false, nil
	}
}

// Set guarda el snapshot con el TTL fijo.
func (c *FeaturedProductsCache) Set(ctx context.Context, snapshot []byte) error {
	if err := c.rdb.Set(ctx, featuredKey, snapshot, featuredTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache destacados: fallo al guardar snapshot")
		return err
	}
	return nil
}

// Invalidate borra la key completa. Invalidación gruesa: cualquier escritura
// sobre items tira todo el snapshot.
func (c *FeaturedProductsCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, featuredKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache destacados: fallo al invalidar")
		return err
	}
	return nil
}
