package news_test

import (
	"testing"

	"github.com/elprincipe/noticias/news"
)

func sample() []*news.Article {
	return []*news.Article{
		{ID: "1", Date: "2025-01-01", Category: "local", Featured: true},
		{ID: "2", Date: "2025-01-05", Category: "sports", Featured: false},
	}
}

func ids(articles []*news.Article) []string {
	result := make([]string, len(articles))
	for i, a := range articles {
		result[i] = a.ID
	}
	return result
}

func TestAllSorted(t *testing.T) {
	t.Run("descending by date", func(t *testing.T) {
		sorted := news.AllSorted(sample())
		got := ids(sorted)
		if len(got) != 2 || got[0] != "2" || got[1] != "1" {
			t.Errorf("expected [2 1], got %v", got)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		input := sample()
		news.AllSorted(input)
		if input[0].ID != "1" {
			t.Errorf("input order changed: %v", ids(input))
		}
	})

	t.Run("equal dates keep input order", func(t *testing.T) {
		input := []*news.Article{
			{ID: "a", Date: "2025-03-01"},
			{ID: "b", Date: "2025-03-01"},
			{ID: "c", Date: "2025-02-01"},
			{ID: "d", Date: "2025-03-01"},
		}
		got := ids(news.AllSorted(input))
		want := []string{"a", "b", "d", "c"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		if got := news.AllSorted(nil); len(got) != 0 {
			t.Errorf("expected empty result, got %v", ids(got))
		}
	})
}

func TestFeatured(t *testing.T) {
	t.Run("only featured articles", func(t *testing.T) {
		got := news.Featured(sample(), 3)
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("expected [1], got %v", ids(got))
		}
	})

	t.Run("caps at n in insertion order", func(t *testing.T) {
		input := []*news.Article{
			{ID: "a", Date: "2025-01-01", Featured: true},
			{ID: "b", Date: "2025-06-01", Featured: true},
			{ID: "c", Date: "2025-03-01", Featured: true},
			{ID: "d", Date: "2025-09-01", Featured: true},
		}
		got := ids(news.Featured(input, 3))
		want := []string{"a", "b", "c"}
		if len(got) != 3 {
			t.Fatalf("expected 3 items, got %d", len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v (insertion order, no date sort), got %v", want, got)
			}
		}
	})

	t.Run("never returns unfeatured", func(t *testing.T) {
		for _, a := range news.Featured(sample(), 3) {
			if !a.Featured {
				t.Errorf("article %s is not featured", a.ID)
			}
		}
	})
}

func TestByCategory(t *testing.T) {
	t.Run("matching category", func(t *testing.T) {
		got := ids(news.ByCategory(sample(), "sports"))
		if len(got) != 1 || got[0] != "2" {
			t.Errorf("expected [2], got %v", got)
		}
	})

	t.Run("unknown category yields empty result", func(t *testing.T) {
		if got := news.ByCategory(sample(), "opinion"); len(got) != 0 {
			t.Errorf("expected empty result, got %v", ids(got))
		}
	})

	t.Run("sorted descending by date", func(t *testing.T) {
		input := []*news.Article{
			{ID: "old", Date: "2024-01-01", Category: "local"},
			{ID: "new", Date: "2025-01-01", Category: "local"},
		}
		got := ids(news.ByCategory(input, "local"))
		if got[0] != "new" || got[1] != "old" {
			t.Errorf("expected [new old], got %v", got)
		}
	})
}

func TestRecent(t *testing.T) {
	input := []*news.Article{
		{ID: "a", Date: "2025-01-01"},
		{ID: "b", Date: "2025-01-03"},
		{ID: "c", Date: "2025-01-02"},
	}

	t.Run("truncates sorted list", func(t *testing.T) {
		got := ids(news.Recent(input, 2))
		if len(got) != 2 || got[0] != "b" || got[1] != "c" {
			t.Errorf("expected [b c], got %v", got)
		}
	})

	t.Run("n larger than collection", func(t *testing.T) {
		if got := news.Recent(input, 10); len(got) != 3 {
			t.Errorf("expected all 3 articles, got %d", len(got))
		}
	})
}
