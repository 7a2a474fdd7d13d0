// internal/recommend/store.go
package recommend

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hooshungry/internal/common/metrics"
	"hooshungry/internal/models"
)

// HallsLimit caps the unfiltered and filtered hall listing.
const HallsLimit = 50

// CandidateStore is the read-only data source the engine scores from.
type CandidateStore interface {
	// Candidates runs the composed predicate and returns at most
	// FetchLimit rows in deterministic id order.
	Candidates(ctx context.Context, pred *Predicate) ([]models.MenuItem, error)
	// Halls lists dining halls, filtered by a case-insensitive name
	// substring when query is non-empty, ordered by name.
	Halls(ctx context.Context, query string) ([]models.DiningHall, error)
}

// MenuStore implements CandidateStore on PostgreSQL.
type MenuStore struct {
	db *sql.DB
}

func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{db: db}
}

func (s *MenuStore) Candidates(ctx context.Context, pred *Predicate) ([]models.MenuItem, error) {
	where, args := pred.Where()
	query := fmt.Sprintf(
		"SELECT id, hall_id, name, calories, vegan, vegetarian, popularity_score FROM menu_items WHERE %s ORDER BY id LIMIT %d",
		where, FetchLimit,
	)

	start := time.Now()
	rows, err := s.db.QueryContext(ctx, query, args...)
	metrics.StoreQueryDuration.WithLabelValues("candidates").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("candidate query: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		var calories sql.NullInt64
		var vegan, vegetarian sql.NullBool

		if err := rows.Scan(&item.ID, &item.HallID, &item.Name, &calories, &vegan, &vegetarian, &item.PopularityScore); err != nil {
			return nil, fmt.Errorf("candidate scan: %w", err)
		}

		if calories.Valid {
			c := int(calories.Int64)
			item.Calories = &c
		}
		if vegan.Valid {
			v := vegan.Bool
			item.Vegan = &v
		}
		if vegetarian.Valid {
			v := vegetarian.Bool
			item.Vegetarian = &v
		}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("candidate rows: %w", err)
	}

	return items, nil
}

func (s *MenuStore) Halls(ctx context.Context, query string) ([]models.DiningHall, error) {
	q := strings.TrimSpace(query)

	sqlText := fmt.Sprintf(
		"SELECT id, name, lat, lon, cuisine, opening_hours FROM dining_halls ORDER BY name LIMIT %d",
		HallsLimit,
	)
	var args []interface{}
	if q != "" {
		sqlText = fmt.Sprintf(
			"SELECT id, name, lat, lon, cuisine, opening_hours FROM dining_halls WHERE name ILIKE $1 ORDER BY name LIMIT %d",
			HallsLimit,
		)
		args = append(args, "%"+q+"%")
	}

	start := time.Now()
	rows, err := s.db.QueryContext(ctx, sqlText, args...)
	metrics.StoreQueryDuration.WithLabelValues("halls").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("halls query: %w", err)
	}
	defer rows.Close()

	var halls []models.DiningHall
	for rows.Next() {
		var hall models.DiningHall
		var cuisine, openingHours sql.NullString

		if err := rows.Scan(&hall.ID, &hall.Name, &hall.Lat, &hall.Lon, &cuisine, &openingHours); err != nil {
			return nil, fmt.Errorf("halls scan: %w", err)
		}

		if cuisine.Valid {
			c := cuisine.String
			hall.Cuisine = &c
		}
		if openingHours.Valid {
			oh := openingHours.String
			hall.OpeningHours = &oh
		}

		halls = append(halls, hall)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("halls rows: %w", err)
	}

	return halls, nil
}
