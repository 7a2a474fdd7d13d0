// internal/recommend/config.go
package recommend

import "time"

// Config holds recommendation service settings.
type Config struct {
	// CacheTTL bounds how stale a cached ranking may get; ingestion does
	// not invalidate entries, so this must stay short relative to the
	// ingestion cadence.
	CacheTTL time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		CacheTTL: 60 * time.Second,
	}
}
