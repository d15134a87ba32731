package server

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/elprincipe/noticias/internal/config"
	"github.com/elprincipe/noticias/internal/storage"
	"github.com/elprincipe/noticias/news/service"
	"github.com/elprincipe/noticias/templater"
	"github.com/microcosm-cc/bluemonday"
)

// weatherCacheTTL is the freshness window for scraped conditions.
const weatherCacheTTL = time.Hour

// Setup initializes the application and returns the App instance.
func Setup() *App {
	conf := config.SetupConfig()

	t := templater.New()
	if err := t.Load("templates/layouts/*.html", "templates/*.html"); err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	articleStore := storage.NewJSONStore(conf.DataFile, conf.CacheFile)

	imageStore, err := storage.NewImageStore(conf.ImageDir)
	if err != nil {
		slog.Error("failed to initialize image storage", "error", err)
		os.Exit(1)
	}

	sessionDB, err := storage.OpenSessionDB(conf.SessionDBFile)
	if err != nil {
		slog.Error("failed to open session database", "error", err)
		os.Exit(1)
	}
	sessionStore := storage.NewSessionStore(sessionDB, "/", conf.CookieExpiry, conf.CookieSecret)

	weatherCache := storage.NewWeatherCache(conf.WeatherCacheFile, weatherCacheTTL)
	weatherClient := &http.Client{Timeout: 15 * time.Second}

	return &App{
		Templater: t,
		Articles:  service.NewArticleService(articleStore, imageStore),
		Auth:      service.NewAuthService(conf.AdminUser, conf.AdminPasswordHash),
		Sessions:  service.NewSessionService(sessionStore),
		Rendering: service.NewRenderingService(bluemonday.UGCPolicy()),
		Weather:   service.NewWeatherService(weatherClient, conf.WeatherURL, weatherCache),
		Config:    conf,
	}
}
