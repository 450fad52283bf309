package service

import (
	"context"
	"log"
	"time"

	"wanderlust-seed/internal/cache"
)

type SeedCache interface {
	PurgePrefix(ctx context.Context, prefix string) (int, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
}

// InvalidateListingCache limpia las páginas de listings cacheadas por la app y deja
// el resumen de la corrida en seed:last (pisando el anterior, que se loguea).
// Solo tiene sentido después de un Run exitoso.
func InvalidateListingCache(ctx context.Context, c SeedCache, rep *Report) error {
	var prev Report
	found, err := c.GetJSON(ctx, cache.LastSeedKey, &prev)
	if err != nil {
		log.Printf("[cache] no se pudo leer %s: %v", cache.LastSeedKey, err)
	} else if found {
		log.Printf("[cache] seed anterior: %d listings, terminó %s", prev.Inserted, prev.FinishedAt.Format(time.RFC3339))
	}

	n, err := c.PurgePrefix(ctx, cache.ListingsPrefix)
	if err != nil {
		return err
	}
	log.Printf("[cache] %d keys %s* invalidadas", n, cache.ListingsPrefix)

	return c.SetJSON(ctx, cache.LastSeedKey, rep, 0)
}
