// Package testutil provides test utilities for noticias integration tests.
package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/elprincipe/noticias/internal/server"
	"github.com/elprincipe/noticias/internal/storage"
	"github.com/elprincipe/noticias/news"
	"github.com/elprincipe/noticias/news/service"
	"github.com/elprincipe/noticias/templater"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"
)

// Test credentials used by SetupTestApp.
const (
	TestAdminUser     = "user"
	TestAdminPassword = "principe2025"
)

// projectRoot returns the root directory of the project.
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filename))
}

// SetupTestApp creates a full application instance over temp-dir stores.
// All state lives under t.TempDir() and is cleaned up automatically.
func SetupTestApp(t *testing.T) *server.App {
	t.Helper()

	dir := t.TempDir()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	conf := &news.Config{
		DataFile:          filepath.Join(dir, "data.json"),
		CacheFile:         filepath.Join(dir, "data_cache.json"),
		SessionDBFile:     filepath.Join(dir, "sessions.db"),
		ImageDir:          filepath.Join(dir, "images"),
		Host:              "localhost:8080",
		BaseURL:           "http://localhost:8080",
		AdminUser:         TestAdminUser,
		AdminPasswordHash: string(hash),
		CookieExpiry:      86400,
		WeatherURL:        "http://127.0.0.1:0/unreachable",
		WeatherCacheFile:  filepath.Join(dir, "weather_cache.json"),
		CookieSecret:      []byte("test-secret-key-for-sessions-32b"),
	}

	tmpl := templater.New()
	templatesPath := filepath.Join(projectRoot(), "templates")
	err = tmpl.Load(
		filepath.Join(templatesPath, "layouts", "*.html"),
		filepath.Join(templatesPath, "*.html"),
	)
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	articleStore := storage.NewJSONStore(conf.DataFile, conf.CacheFile)

	imageStore, err := storage.NewImageStore(conf.ImageDir)
	if err != nil {
		t.Fatalf("failed to create image store: %v", err)
	}

	sessionDB, err := storage.OpenSessionDB(conf.SessionDBFile)
	if err != nil {
		t.Fatalf("failed to open session database: %v", err)
	}
	t.Cleanup(func() { sessionDB.Close() })

	sessionStore := storage.NewSessionStore(sessionDB, "/", conf.CookieExpiry, conf.CookieSecret)
	weatherCache := storage.NewWeatherCache(conf.WeatherCacheFile, time.Hour)

	return &server.App{
		Templater: tmpl,
		Articles:  service.NewArticleService(articleStore, imageStore),
		Auth:      service.NewAuthService(conf.AdminUser, conf.AdminPasswordHash),
		Sessions:  service.NewSessionService(sessionStore),
		Rendering: service.NewRenderingService(bluemonday.UGCPolicy()),
		Weather:   service.NewWeatherService(&http.Client{Timeout: time.Second}, conf.WeatherURL, weatherCache),
		Config:    conf,
	}
}

// CreateTestArticle creates an article through the service and returns it.
func CreateTestArticle(t *testing.T, app *server.App, title, content, category string) *news.Article {
	t.Helper()

	article, err := app.Articles.Create(title, content, category, nil)
	if err != nil {
		t.Fatalf("failed to create test article: %v", err)
	}
	return article
}

// RequestWithUser creates a request with a user context attached.
func RequestWithUser(r *http.Request, user *news.User) *http.Request {
	ctx := context.WithValue(r.Context(), news.UserKey, user)
	return r.WithContext(ctx)
}

// MakeTestRequest creates a test request with optional user context. A nil
// user attaches the anonymous viewer.
func MakeTestRequest(method, url string, user *news.User) *http.Request {
	req := httptest.NewRequest(method, url, nil)
	if user == nil {
		user = news.AnonymousUser()
	}
	return RequestWithUser(req, user)
}
