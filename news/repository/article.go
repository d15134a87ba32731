package repository

import "github.com/elprincipe/noticias/news"

// ArticleRepository defines the interface for whole-document article
// persistence. There are no partial reads or writes: every mutation is
// load-all, modify, save-all.
type ArticleRepository interface {
	// LoadArticles returns the full collection in insertion order. It never
	// returns an empty collection on a fresh installation: when neither the
	// primary document nor the cache can be read, the seed article is
	// returned (and persisted).
	LoadArticles() ([]*news.Article, error)

	// SaveArticles serializes the full collection and overwrites the
	// persisted document. Last writer wins.
	SaveArticles(articles []*news.Article) error
}
