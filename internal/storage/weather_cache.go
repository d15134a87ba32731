package storage

import (
	"encoding/json"
	"os"
	"time"

	"github.com/elprincipe/noticias/news"
	"github.com/pkg/errors"
)

// WeatherCache is a single-entry file cache for scraped weather conditions,
// keyed by fetch time with a freshness window.
type WeatherCache struct {
	path string
	ttl  time.Duration
}

type weatherCacheEntry struct {
	FetchedAt  time.Time        `json:"fetchedAt"`
	Conditions *news.Conditions `json:"conditions"`
}

// NewWeatherCache creates a cache over the given file with the given
// freshness window.
func NewWeatherCache(path string, ttl time.Duration) *WeatherCache {
	return &WeatherCache{path: path, ttl: ttl}
}

// Get returns the cached conditions if they are still fresh. A missing or
// unreadable cache file is reported as a miss, not an error.
func (c *WeatherCache) Get() (*news.Conditions, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, false
	}
	var entry weatherCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	if entry.Conditions == nil || time.Since(entry.FetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.Conditions, true
}

// Put replaces the cached entry, stamping it with the current time.
func (c *WeatherCache) Put(conditions *news.Conditions) error {
	data, err := json.Marshal(weatherCacheEntry{
		FetchedAt:  time.Now(),
		Conditions: conditions,
	})
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(c.path, data, 0644), "writing %s", c.path)
}
