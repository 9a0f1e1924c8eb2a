// Command seed loads development fixtures into the configured store backend.
package main

import (
	"context"
	"log"
	"time"

	"skillswap/internal/app"
	"skillswap/internal/config"
	"skillswap/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, c.Stores); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("seeding complete")
}
