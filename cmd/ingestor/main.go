// cmd/ingestor/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"hooshungry/internal/common/config"
	"hooshungry/internal/common/database"
	"hooshungry/internal/common/logger"
	"hooshungry/internal/ingest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting ingestion run", zap.String("bbox", cfg.Ingest.BBox))

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres init failed", zap.Error(err))
	}
	defer pg.Close()

	ctx := context.Background()
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := pg.Ping(pingCtx); err != nil {
		cancel()
		zapLog.Fatal("postgres unreachable", zap.Error(err))
	}
	cancel()

	timeout := config.GetDuration(cfg.Ingest.Timeout)
	overpass := ingest.NewOverpassClient(cfg.Ingest.OverpassURL, timeout)
	enricher := ingest.NewEnricher(cfg.Ingest.OFFSearchURL, timeout)

	pipeline := ingest.NewPipeline(pg.GetDB(), overpass, enricher.Search, cfg.Ingest, log)
	if err := pipeline.Run(ctx); err != nil {
		zapLog.Fatal("ingestion run failed", zap.Error(err))
	}

	zapLog.Info("ingestion run finished")
}
