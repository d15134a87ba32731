package storage

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/elprincipe/noticias/news"
	"github.com/pkg/errors"
)

// JSONStore persists the article collection as a single JSON document.
// Reads try the primary document first, then the cache copy, and finally fall
// back to the seed article, so the site never starts with zero articles.
// Writes rewrite the whole document and refresh the cache.
type JSONStore struct {
	path      string
	cachePath string
}

// NewJSONStore creates a JSONStore over the given primary and cache paths.
func NewJSONStore(path, cachePath string) *JSONStore {
	return &JSONStore{path: path, cachePath: cachePath}
}

// LoadArticles returns the full collection in insertion order, following the
// primary -> cache -> seed fallback chain. Load failures of the primary
// document are recovered locally and never surfaced as errors.
func (s *JSONStore) LoadArticles() ([]*news.Article, error) {
	articles, err := readDocument(s.path)
	if err == nil {
		return articles, nil
	}
	slog.Warn("primary news document unreadable, trying cache", "file", s.path, "error", err)

	articles, err = readDocument(s.cachePath)
	if err == nil {
		return articles, nil
	}
	slog.Warn("news cache unreadable, seeding sample article", "file", s.cachePath, "error", err)

	seeded := []*news.Article{news.SeedArticle()}
	if err := writeDocument(s.cachePath, seeded); err != nil {
		return nil, errors.Wrap(err, "persisting seed article")
	}
	return seeded, nil
}

// SaveArticles overwrites the persisted document with the full collection and
// refreshes the cache copy. No partial writes; last writer wins.
func (s *JSONStore) SaveArticles(articles []*news.Article) error {
	if err := writeDocument(s.path, articles); err != nil {
		return errors.Wrapf(err, "writing %s", s.path)
	}
	if err := writeDocument(s.cachePath, articles); err != nil {
		return errors.Wrapf(err, "writing %s", s.cachePath)
	}
	return nil
}

func readDocument(path string) ([]*news.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var articles []*news.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func writeDocument(path string, articles []*news.Article) error {
	if articles == nil {
		articles = []*news.Article{}
	}
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
