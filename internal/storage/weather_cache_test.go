package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/elprincipe/noticias/news"
)

func TestWeatherCache(t *testing.T) {
	conditions := &news.Conditions{Temperature: 31, Description: "Soleado", Forecast: []int{31, 32, 30}}

	t.Run("fresh entry hits", func(t *testing.T) {
		cache := NewWeatherCache(filepath.Join(t.TempDir(), "weather.json"), time.Hour)
		if err := cache.Put(conditions); err != nil {
			t.Fatal(err)
		}
		got, ok := cache.Get()
		if !ok {
			t.Fatal("expected cache hit")
		}
		if got.Temperature != 31 || got.Description != "Soleado" || len(got.Forecast) != 3 {
			t.Errorf("cached conditions mangled: %+v", got)
		}
	})

	t.Run("stale entry misses", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weather.json")
		data, err := json.Marshal(weatherCacheEntry{
			FetchedAt:  time.Now().Add(-2 * time.Hour),
			Conditions: conditions,
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
		if _, ok := NewWeatherCache(path, time.Hour).Get(); ok {
			t.Error("expected miss for stale entry")
		}
	})

	t.Run("missing file misses", func(t *testing.T) {
		cache := NewWeatherCache(filepath.Join(t.TempDir(), "absent.json"), time.Hour)
		if _, ok := cache.Get(); ok {
			t.Error("expected miss for missing file")
		}
	})

	t.Run("corrupt file misses", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weather.json")
		if err := os.WriteFile(path, []byte("{garbage"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, ok := NewWeatherCache(path, time.Hour).Get(); ok {
			t.Error("expected miss for corrupt file")
		}
	})
}
