package main

import (
	"log"
	"time"

	"github.com/teamtrack/teamtrack/internal/config"
	"github.com/teamtrack/teamtrack/internal/db"
)

// One-shot seeder: migrates the schema and loads the sample data set.
func main() {
	cfg := config.Load()

	pool, err := db.NewPool(cfg.DBURL, 2)

	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	defer pool.Close()

	ctx, cancel := config.WithTimeout(30 * time.Second)
	defer cancel()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if err := db.SeedSampleData(ctx, pool); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Println("seed complete")
}
