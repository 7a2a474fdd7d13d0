// internal/ingest/pipeline.go
package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"hooshungry/internal/common/config"
	"hooshungry/internal/common/logger"
	"hooshungry/internal/common/metrics"

	"github.com/lib/pq"
)

// DefaultItems seeds per-hall menus until real menu feeds exist.
var DefaultItems = []string{
	"pizza", "salad", "burger", "sushi", "sandwich", "pasta", "taco", "burrito", "coffee", "yogurt",
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS dining_halls (
	id             BIGSERIAL PRIMARY KEY,
	osm_id         TEXT NOT NULL UNIQUE,
	name           TEXT NOT NULL,
	lat            DOUBLE PRECISION NOT NULL,
	lon            DOUBLE PRECISION NOT NULL,
	cuisine        TEXT,
	opening_hours  TEXT
);

CREATE TABLE IF NOT EXISTS menu_items (
	id                BIGSERIAL PRIMARY KEY,
	hall_id           BIGINT NOT NULL REFERENCES dining_halls(id) ON DELETE CASCADE,
	name              TEXT NOT NULL,
	brand             TEXT,
	calories          INTEGER,
	allergens         TEXT[],
	vegan             BOOLEAN,
	vegetarian        BOOLEAN,
	popularity_score  DOUBLE PRECISION NOT NULL DEFAULT 0
);
`

// EnrichFunc resolves product facts for a search term. Implemented by
// Enricher.Search; substituted in tests.
type EnrichFunc func(ctx context.Context, term string) (*ItemFacts, error)

// Pipeline refreshes dining halls from the geographic source and
// regenerates enriched menu items per hall. Enrichment is best-effort: a
// failed item falls back to a bare-name record, never aborting the run.
type Pipeline struct {
	db       *sql.DB
	overpass *OverpassClient
	enrich   EnrichFunc
	cfg      config.IngestConfig
	logger   logger.Logger
	rng      *rand.Rand
}

func NewPipeline(db *sql.DB, overpass *OverpassClient, enrich EnrichFunc, cfg config.IngestConfig, log logger.Logger) *Pipeline {
	return &Pipeline{
		db:       db,
		overpass: overpass,
		enrich:   enrich,
		cfg:      cfg,
		logger:   log.WithFields(map[string]interface{}{"component": "ingest"}),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// EnsureSchema creates the consumed tables when missing.
func (p *Pipeline) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Run executes one full ingestion pass.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.EnsureSchema(ctx); err != nil {
		return err
	}

	p.logger.Info("fetching dining locations", map[string]interface{}{"bbox": p.cfg.BBox})
	halls, err := p.overpass.FetchHalls(ctx, p.cfg.BBox)
	if err != nil {
		return fmt.Errorf("fetch halls: %w", err)
	}
	p.logger.Info("locations fetched", map[string]interface{}{"count": len(halls)})

	for _, hall := range halls {
		if err := p.upsertHall(ctx, hall); err != nil {
			return err
		}
		metrics.IngestHallsUpserted.Inc()
	}

	return p.regenerateMenus(ctx)
}

func (p *Pipeline) upsertHall(ctx context.Context, hall Hall) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO dining_halls (osm_id, name, lat, lon, cuisine, opening_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (osm_id) DO UPDATE SET
		  name = EXCLUDED.name,
		  lat = EXCLUDED.lat,
		  lon = EXCLUDED.lon,
		  cuisine = EXCLUDED.cuisine,
		  opening_hours = EXCLUDED.opening_hours`,
		hall.OSMID, hall.Name, hall.Lat, hall.Lon, hall.Cuisine, hall.OpeningHours)
	if err != nil {
		return fmt.Errorf("upsert hall %s: %w", hall.OSMID, err)
	}
	return nil
}

func (p *Pipeline) regenerateMenus(ctx context.Context) error {
	rows, err := p.db.QueryContext(ctx,
		"SELECT id, name FROM dining_halls ORDER BY id LIMIT $1", p.cfg.HallsLimit)
	if err != nil {
		return fmt.Errorf("list halls: %w", err)
	}
	defer rows.Close()

	type hallRow struct {
		id   int64
		name string
	}
	var hallRows []hallRow
	for rows.Next() {
		var hr hallRow
		if err := rows.Scan(&hr.id, &hr.name); err != nil {
			return fmt.Errorf("scan hall: %w", err)
		}
		hallRows = append(hallRows, hr)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list halls: %w", err)
	}

	p.logger.Info("regenerating menu items", map[string]interface{}{"halls": len(hallRows)})

	for _, hr := range hallRows {
		// Wipe and regenerate for repeatability.
		if _, err := p.db.ExecContext(ctx, "DELETE FROM menu_items WHERE hall_id = $1", hr.id); err != nil {
			return fmt.Errorf("clear menu for hall %d: %w", hr.id, err)
		}

		for i := 0; i < p.cfg.ItemsPerHall; i++ {
			term := DefaultItems[p.rng.Intn(len(DefaultItems))]

			facts, err := p.enrich(ctx, term)
			if err != nil || facts == nil {
				metrics.IngestEnrichmentFailures.Inc()
				if err != nil {
					p.logger.WithError(err).Warn("enrichment failed, storing bare item", map[string]interface{}{
						"term": term,
					})
				}
				facts = &ItemFacts{Name: term}
			}

			popularity := 0.05 + p.rng.Float64()*0.90

			_, err = p.db.ExecContext(ctx, `
				INSERT INTO menu_items (hall_id, name, brand, calories, allergens, vegan, vegetarian, popularity_score)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				hr.id,
				fmt.Sprintf("%s (%s)", facts.Name, hr.name),
				facts.Brand,
				facts.Calories,
				pq.Array(facts.Allergens),
				facts.Vegan,
				facts.Vegetarian,
				popularity)
			if err != nil {
				return fmt.Errorf("insert item for hall %d: %w", hr.id, err)
			}
			metrics.IngestItemsCreated.Inc()
		}
	}

	p.logger.Info("ingestion complete", nil)
	return nil
}
