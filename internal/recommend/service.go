// internal/recommend/service.go
package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hooshungry/internal/common/errors"
	"hooshungry/internal/common/logger"
	"hooshungry/internal/common/metrics"
	"hooshungry/internal/models"

	"golang.org/x/sync/singleflight"
)

// recommendOperation is the request text fed to the fingerprint; the
// structured variables carry everything that varies per request.
const recommendOperation = "recommend"

// Service orchestrates one recommendation request:
// check cache -> on miss, compose + fetch + score + rank -> populate cache.
type Service struct {
	config *Config
	store  CandidateStore
	cache  ResultCache
	logger logger.Logger
	flight singleflight.Group
}

func NewService(config *Config, store CandidateStore, cache ResultCache, log logger.Logger) *Service {
	return &Service{
		config: config,
		store:  store,
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"component": "recommend"}),
	}
}

// fingerprintVars is the canonical serialized form of one logical request.
// Field order is fixed by the struct, so identical requests always produce
// identical bytes.
type fingerprintVars struct {
	HallID int64                      `json:"hallId"`
	Prefs  models.ResolvedPreferences `json:"prefs"`
	Limit  int                        `json:"limit"`
}

// Recommend returns the ranked menu items for a hall under the given
// preferences. Out-of-range fields are normalized by clamping. Store
// failures surface as retryable errors; cache faults are absorbed.
func (s *Service) Recommend(ctx context.Context, hallID int64, prefs models.Preferences, limit *int) ([]models.ScoredMenuItem, error) {
	start := time.Now()

	resolved := prefs.Resolve()
	lim := models.ClampLimit(limit)

	vars, err := json.Marshal(fingerprintVars{HallID: hallID, Prefs: resolved, Limit: lim})
	if err != nil {
		return nil, fmt.Errorf("serialize request variables: %w", err)
	}
	key := CacheKey(Fingerprint(recommendOperation, vars))

	if items, ok := s.cachedResult(ctx, key); ok {
		metrics.RecommendRequests.WithLabelValues("hit").Inc()
		metrics.RecommendDuration.Observe(time.Since(start).Seconds())
		return items, nil
	}

	// Concurrent misses on the same fingerprint share one computation.
	// The leader's ctx drives the shared compute: if the leader cancels,
	// every waiter fails with its error. Accepted trade-off; keeping the
	// fetch cancellable matters more than isolating waiters.
	result, err, _ := s.flight.Do(key, func() (interface{}, error) {
		return s.compute(ctx, key, hallID, resolved, lim)
	})
	if err != nil {
		metrics.RecommendRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RecommendRequests.WithLabelValues("miss").Inc()
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	return result.([]models.ScoredMenuItem), nil
}

// ListHalls lists dining halls by optional name substring.
func (s *Service) ListHalls(ctx context.Context, query string) ([]models.DiningHall, error) {
	halls, err := s.store.Halls(ctx, query)
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}
	return halls, nil
}

func (s *Service) compute(ctx context.Context, key string, hallID int64, prefs models.ResolvedPreferences, limit int) ([]models.ScoredMenuItem, error) {
	pred := ComposePredicate(hallID, prefs)

	candidates, err := s.store.Candidates(ctx, pred)
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}

	scored := make([]models.ScoredMenuItem, 0, len(candidates))
	for _, item := range candidates {
		scored = append(scored, ScoreItem(prefs, item))
	}

	ranked := Rank(scored, limit)

	s.storeResult(ctx, key, ranked)

	s.logger.Debug("recommendation computed", map[string]interface{}{
		"hallId":     hallID,
		"candidates": len(candidates),
		"returned":   len(ranked),
		"clauses":    pred.Names(),
	})

	return ranked, nil
}

// cachedResult checks the cache, treating any fault as a miss. A corrupt
// payload also falls through to recomputation.
func (s *Service) cachedResult(ctx context.Context, key string) ([]models.ScoredMenuItem, bool) {
	payload, found, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheErrors.WithLabelValues("get").Inc()
		s.logger.WithError(err).Warn("cache get failed, proceeding without cache", map[string]interface{}{
			"key": key,
		})
		return nil, false
	}
	if !found {
		return nil, false
	}

	var items []models.ScoredMenuItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		s.logger.WithError(err).Warn("discarding corrupt cache payload", map[string]interface{}{
			"key": key,
		})
		return nil, false
	}
	return items, true
}

// storeResult populates the cache after a computation. Failures are
// absorbed; the response is already in hand.
func (s *Service) storeResult(ctx context.Context, key string, items []models.ScoredMenuItem) {
	payload, err := json.Marshal(items)
	if err != nil {
		s.logger.WithError(err).Error("serialize ranked result", nil)
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), s.config.CacheTTL); err != nil {
		metrics.CacheErrors.WithLabelValues("set").Inc()
		s.logger.WithError(err).Warn("cache set failed, skipping store", map[string]interface{}{
			"key": key,
		})
	}
}
