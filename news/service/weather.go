package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/elprincipe/noticias/news"
	"golang.org/x/net/html/charset"
)

// ConditionsCache is a single-entry cache with a freshness window.
type ConditionsCache interface {
	Get() (*news.Conditions, bool)
	Put(conditions *news.Conditions) error
}

// WeatherService fetches current conditions by scraping a third-party
// forecast page. It is best-effort and fully isolated from the article
// pipeline: callers fall back to news.FallbackConditions on any error.
type WeatherService interface {
	// CurrentConditions returns cached conditions when fresh, otherwise
	// fetches and parses the forecast page and refreshes the cache.
	CurrentConditions(ctx context.Context) (*news.Conditions, error)
}

// weatherService is the default implementation of WeatherService.
type weatherService struct {
	client *http.Client
	url    string
	cache  ConditionsCache
}

// NewWeatherService creates a WeatherService scraping the given page URL.
func NewWeatherService(client *http.Client, url string, cache ConditionsCache) WeatherService {
	return &weatherService{client: client, url: url, cache: cache}
}

var nonDigits = regexp.MustCompile(`[^\d-]`)

func (s *weatherService) CurrentConditions(ctx context.Context) (*news.Conditions, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast page returned status %d", resp.StatusCode)
	}

	// Third-party pages are not reliably UTF-8.
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	conditions := parseForecastPage(doc)

	if err := s.cache.Put(conditions); err != nil {
		// A stale cache only costs a refetch next time.
		slog.Warn("failed to cache weather conditions", "error", err)
	}
	return conditions, nil
}

// parseForecastPage extracts conditions from the page markup. The selectors
// follow the forecast page's current structure; elements that have moved or
// been renamed fall back to the same defaults the widget has always shown.
func parseForecastPage(doc *goquery.Document) *news.Conditions {
	conditions := news.FallbackConditions()

	temp := doc.Find(".temp, [data-qa=temperature], .temperature").First()
	if value, err := strconv.Atoi(nonDigits.ReplaceAllString(temp.Text(), "")); err == nil {
		conditions.Temperature = value
	}

	if phrase := strings.TrimSpace(doc.Find(".phrase, [data-qa=weatherText], .weather-text").First().Text()); phrase != "" {
		conditions.Description = phrase
	}

	forecast := make([]int, 0, 3)
	doc.Find(".hourly-card .temp, [data-qa=hourlyTemp]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if value, err := strconv.Atoi(nonDigits.ReplaceAllString(sel.Text(), "")); err == nil {
			forecast = append(forecast, value)
		}
		return len(forecast) < 3
	})
	for len(forecast) < 3 {
		forecast = append(forecast, conditions.Temperature+len(forecast))
	}
	conditions.Forecast = forecast

	return conditions
}
