package service

import (
	"io"

	"github.com/elprincipe/noticias/news"
	"github.com/elprincipe/noticias/news/repository"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// ImageUpload is an optional uploaded image accompanying a create or update.
// Contents is read to completion before the owning mutation is persisted.
type ImageUpload struct {
	Filename string
	Contents io.Reader
}

// ArticleService defines the interface for article operations.
type ArticleService interface {
	// List returns a snapshot of the full collection in insertion order.
	List() ([]*news.Article, error)

	// Get retrieves a single article by ID.
	Get(id string) (*news.Article, error)

	// Featured returns up to n featured articles in collection order.
	Featured(n int) ([]*news.Article, error)

	// AllSorted returns the collection sorted descending by date.
	AllSorted() ([]*news.Article, error)

	// ByCategory returns the articles in a category, newest first.
	ByCategory(category string) ([]*news.Article, error)

	// Recent returns the n most recent articles.
	Recent(n int) ([]*news.Article, error)

	// Create validates and appends a new article, storing the optional image
	// first. The created article is returned with its assigned ID and date.
	Create(title, content, category string, image *ImageUpload) (*news.Article, error)

	// Update overwrites title/content/category (and the image, when a new one
	// is supplied) of an existing article. ID, date and featured are untouched.
	Update(id, title, content, category string, image *ImageUpload) (*news.Article, error)

	// Delete removes an article by ID and releases its stored image.
	Delete(id string) error
}

// articleService is the default implementation of ArticleService.
type articleService struct {
	repo   repository.ArticleRepository
	images repository.ImageRepository
	strip  *bluemonday.Policy
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repository.ArticleRepository, images repository.ImageRepository) ArticleService {
	return &articleService{
		repo:   repo,
		images: images,
		strip:  bluemonday.StrictPolicy(),
	}
}

func (s *articleService) List() ([]*news.Article, error) {
	return s.repo.LoadArticles()
}

func (s *articleService) Get(id string) (*news.Article, error) {
	articles, err := s.repo.LoadArticles()
	if err != nil {
		return nil, err
	}
	for _, a := range articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, news.ErrArticleNotFound
}

func (s *articleService) Featured(n int) ([]*news.Article, error) {
	articles, err := s.repo.LoadArticles()
	if err != nil {
		return nil, err
	}
	return news.Featured(articles, n), nil
}

func (s *articleService) AllSorted() ([]*news.Article, error) {
	articles, err := s.repo.LoadArticles()
	if err != nil {
		return nil, err
	}
	return news.AllSorted(articles), nil
}

func (s *articleService) ByCategory(category string) ([]*news.Article, error) {
	articles, err := s.repo.LoadArticles()
	if err != nil {
		return nil, err
	}
	return news.ByCategory(articles, category), nil
}

func (s *articleService) Recent(n int) ([]*news.Article, error) {
	articles, err := s.repo.LoadArticles()
	if err != nil {
		return nil, err
	}
	return news.Recent(articles, n), nil
}

// validate checks the required create/update fields. No partial writes happen
// on a validation failure.
func validate(title, content, category string) error {
	switch {
	case title == "":
		return news.ErrMissingTitle
	case content == "":
		return news.ErrMissingContent
	case category == "":
		return news.ErrMissingCategory
	}
	return nil
}

func (s *articleService) Create(title, content, category string, image *ImageUpload) (*news.Article, error) {
	if err := validate(title, content, category); err != nil {
		return nil, err
	}

	article := news.NewArticle(s.strip.Sanitize(title), content, s.strip.Sanitize(category))

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	article.ID = id.String()

	// The image is read to completion before the record is persisted.
	if image != nil {
		name, err := s.images.Store(image.Filename, image.Contents)
		if err != nil {
			return nil, err
		}
		article.ImagePath = name
	}

	articles, err := s.repo.LoadArticles()
	if err != nil {
		return nil, err
	}
	articles = append(articles, article)

	if err := s.repo.SaveArticles(articles); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) Update(id, title, content, category string, image *ImageUpload) (*news.Article, error) {
	if err := validate(title, content, category); err != nil {
		return nil, err
	}

	articles, err := s.repo.LoadArticles()
	if err != nil {
		return nil, err
	}

	article := find(articles, id)
	if article == nil {
		return nil, news.ErrArticleNotFound
	}

	article.Title = s.strip.Sanitize(title)
	article.Content = content
	article.Category = s.strip.Sanitize(category)

	if image != nil {
		name, err := s.images.Store(image.Filename, image.Contents)
		if err != nil {
			return nil, err
		}
		if article.HasImage() {
			if err := s.images.Remove(article.ImagePath); err != nil {
				return nil, err
			}
		}
		article.ImagePath = name
	}

	if err := s.repo.SaveArticles(articles); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) Delete(id string) error {
	articles, err := s.repo.LoadArticles()
	if err != nil {
		return err
	}

	remaining := make([]*news.Article, 0, len(articles))
	var deleted *news.Article
	for _, a := range articles {
		if a.ID == id {
			deleted = a
			continue
		}
		remaining = append(remaining, a)
	}
	if deleted == nil {
		return news.ErrArticleNotFound
	}

	if deleted.HasImage() {
		if err := s.images.Remove(deleted.ImagePath); err != nil {
			return err
		}
	}

	return s.repo.SaveArticles(remaining)
}

func find(articles []*news.Article, id string) *news.Article {
	for _, a := range articles {
		if a.ID == id {
			return a
		}
	}
	return nil
}
