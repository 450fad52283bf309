package main

import (
	"context"
	"log"
	"os"

	"wanderlust-seed/internal/cache"
	"wanderlust-seed/internal/config"
	"wanderlust-seed/internal/data"
	"wanderlust-seed/internal/service"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("[seed] %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Load()

	dataset, err := data.Load(cfg.DataFile)
	if err != nil {
		return err
	}

	svc := service.NewSeedService(service.MongoDialer(cfg.MongoURI), dataset, cfg.OwnerID)
	rep, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	if cfg.CacheEnabled() {
		invalidateCache(ctx, cfg, rep)
	}

	log.Println("[seed] data was initialized")
	return nil
}

// La base ya quedó bien; un Redis caído solo se avisa.
func invalidateCache(ctx context.Context, cfg *config.Config, rep *service.Report) {
	c, err := cache.New(ctx, cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		log.Printf("[cache] WARN: %v", err)
		return
	}
	defer c.Close()

	if err := service.InvalidateListingCache(ctx, c, rep); err != nil {
		log.Printf("[cache] WARN: no se pudo invalidar: %v", err)
	}
}
