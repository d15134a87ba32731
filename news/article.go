package news

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used in the persisted document.
const DateLayout = "2006-01-02"

// PreviewLength is the number of characters shown for an article in list views.
const PreviewLength = 100

// Article is a single news item. The JSON tags match the persisted document
// exactly; the collection on disk carries articles in insertion order.
type Article struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Date      string `json:"date"` // YYYY-MM-DD, set at creation
	ImagePath string `json:"imagePath"`
	Featured  bool   `json:"featured"`
}

func NewArticle(title, content, category string) *Article {
	return &Article{
		Title:    title,
		Content:  content,
		Category: category,
		Date:     time.Now().Format(DateLayout),
	}
}

func (a *Article) String() string {
	return fmt.Sprintf("%s %q (%s, %s)", a.ID, a.Title, a.Category, a.Date)
}

// Preview returns the content truncated to PreviewLength characters, with an
// ellipsis marker when truncation happened.
func (a *Article) Preview() string {
	runes := []rune(a.Content)
	if len(runes) <= PreviewLength {
		return a.Content
	}
	return string(runes[:PreviewLength]) + "..."
}

// HasImage reports whether the article references a stored image.
func (a *Article) HasImage() bool {
	return a.ImagePath != ""
}

// Caption is the "date - category" line shown under every article.
func (a *Article) Caption() string {
	return a.Date + " - " + a.Category
}

// SeedArticle is the article the store falls back to when neither the primary
// document nor the cache can be read. A fresh copy is returned each call so
// callers may persist and mutate it freely.
func SeedArticle() *Article {
	return &Article{
		ID:       "1",
		Title:    "Bienvenido a NOTICIAS PRINCIPE",
		Content:  "Esta es la primera noticia de nuestro diario digital.",
		Category: "local",
		Date:     time.Now().Format(DateLayout),
		Featured: true,
	}
}
