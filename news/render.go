package news

// Item is the display representation of a single article. It is computed
// entirely from article data plus the viewer role; templates consume it
// without reaching back into the store.
type Item struct {
	ID            string
	Title         string
	Preview       string
	Caption       string
	ImagePath     string
	HasImage      bool
	AdminControls bool
}

// RenderArticle maps one article to its display representation. When isAdmin
// is set, the item carries edit/delete controls bound to the article ID.
func RenderArticle(a *Article, isAdmin bool) Item {
	return Item{
		ID:            a.ID,
		Title:         a.Title,
		Preview:       a.Preview(),
		Caption:       a.Caption(),
		ImagePath:     a.ImagePath,
		HasImage:      a.HasImage(),
		AdminControls: isAdmin,
	}
}

// RenderList maps a list of articles to display items, preserving order.
func RenderList(articles []*Article, isAdmin bool) []Item {
	items := make([]Item, len(articles))
	for i, a := range articles {
		items[i] = RenderArticle(a, isAdmin)
	}
	return items
}
