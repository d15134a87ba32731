package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/elprincipe/noticias/internal/storage"
	"github.com/elprincipe/noticias/news"
	"github.com/elprincipe/noticias/news/service"
)

const forecastPage = `<!DOCTYPE html>
<html><body>
<div class="cur-con-weather-card">
  <div class="temp">29°</div>
  <span class="phrase">Mayormente soleado</span>
</div>
<div class="hourly-list">
  <div class="hourly-card"><span class="temp">29°</span></div>
  <div class="hourly-card"><span class="temp">31°</span></div>
  <div class="hourly-card"><span class="temp">30°</span></div>
  <div class="hourly-card"><span class="temp">27°</span></div>
</div>
</body></html>`

func weatherCache(t *testing.T) *storage.WeatherCache {
	t.Helper()
	return storage.NewWeatherCache(filepath.Join(t.TempDir(), "weather.json"), time.Hour)
}

func TestCurrentConditions(t *testing.T) {
	t.Run("parses the forecast page", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.Header().Set("Content-Type", "text/html; charset=utf-8")
			rw.Write([]byte(forecastPage))
		}))
		defer srv.Close()

		svc := service.NewWeatherService(srv.Client(), srv.URL, weatherCache(t))
		got, err := svc.CurrentConditions(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if got.Temperature != 29 {
			t.Errorf("expected temperature 29, got %d", got.Temperature)
		}
		if got.Description != "Mayormente soleado" {
			t.Errorf("unexpected description %q", got.Description)
		}
		want := []int{29, 31, 30}
		if len(got.Forecast) != 3 {
			t.Fatalf("expected 3 forecast entries, got %v", got.Forecast)
		}
		for i := range want {
			if got.Forecast[i] != want[i] {
				t.Errorf("forecast %v, expected %v", got.Forecast, want)
			}
		}
	})

	t.Run("unrecognized markup keeps the defaults", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.Write([]byte("<html><body><p>redesigned</p></body></html>"))
		}))
		defer srv.Close()

		svc := service.NewWeatherService(srv.Client(), srv.URL, weatherCache(t))
		got, err := svc.CurrentConditions(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		fallback := news.FallbackConditions()
		if got.Temperature != fallback.Temperature || got.Description != fallback.Description {
			t.Errorf("expected fallback conditions, got %+v", got)
		}
	})

	t.Run("fresh cache skips the fetch", func(t *testing.T) {
		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			hits++
			rw.Write([]byte(forecastPage))
		}))
		defer srv.Close()

		svc := service.NewWeatherService(srv.Client(), srv.URL, weatherCache(t))
		if _, err := svc.CurrentConditions(context.Background()); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.CurrentConditions(context.Background()); err != nil {
			t.Fatal(err)
		}
		if hits != 1 {
			t.Errorf("expected a single fetch, page was hit %d times", hits)
		}
	})

	t.Run("non-200 page is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			rw.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		svc := service.NewWeatherService(srv.Client(), srv.URL, weatherCache(t))
		if _, err := svc.CurrentConditions(context.Background()); err == nil {
			t.Error("expected an error for a 503 page")
		}
	})

	t.Run("unreachable page is an error", func(t *testing.T) {
		client := &http.Client{Timeout: time.Second}
		svc := service.NewWeatherService(client, "http://127.0.0.1:0/forecast", weatherCache(t))
		if _, err := svc.CurrentConditions(context.Background()); err == nil {
			t.Error("expected an error when the page is unreachable")
		}
	})
}
