package server_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/elprincipe/noticias/news"
	"github.com/elprincipe/noticias/testutil"
	"github.com/gorilla/mux"
)

func TestHomeHandler(t *testing.T) {
	t.Run("renders the front page", func(t *testing.T) {
		app := testutil.SetupTestApp(t)
		testutil.CreateTestArticle(t, app, "Titular de prueba", "Contenido", "local")

		rec := httptest.NewRecorder()
		app.HomeHandler(rec, testutil.MakeTestRequest("GET", "/", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Titular de prueba") {
			t.Error("expected the created article on the front page")
		}
		if !strings.Contains(body, news.SeedArticle().Title) {
			t.Error("expected the seed article on the front page")
		}
	})

	t.Run("anonymous viewers get no edit controls", func(t *testing.T) {
		app := testutil.SetupTestApp(t)
		article := testutil.CreateTestArticle(t, app, "Titular", "Contenido", "local")

		rec := httptest.NewRecorder()
		app.HomeHandler(rec, testutil.MakeTestRequest("GET", "/", nil))
		if strings.Contains(rec.Body.String(), "/admin?edit="+article.ID) {
			t.Error("anonymous page shows edit controls")
		}

		rec = httptest.NewRecorder()
		app.HomeHandler(rec, testutil.MakeTestRequest("GET", "/", &news.User{Name: testutil.TestAdminUser}))
		if !strings.Contains(rec.Body.String(), "/admin?edit="+article.ID) {
			t.Error("admin page is missing edit controls")
		}
	})

	t.Run("previews are truncated", func(t *testing.T) {
		app := testutil.SetupTestApp(t)
		long := strings.Repeat("palabra ", 40)
		testutil.CreateTestArticle(t, app, "Largo", long, "local")

		rec := httptest.NewRecorder()
		app.HomeHandler(rec, testutil.MakeTestRequest("GET", "/", nil))
		if strings.Contains(rec.Body.String(), long) {
			t.Error("front page shows the full content instead of the preview")
		}
	})
}

func TestCategoryHandler(t *testing.T) {
	app := testutil.SetupTestApp(t)
	testutil.CreateTestArticle(t, app, "Noticia deportiva", "Contenido", "sports")
	testutil.CreateTestArticle(t, app, "Noticia vecinal", "Contenido", "local")

	req := mux.SetURLVars(testutil.MakeTestRequest("GET", "/category/sports", nil), map[string]string{"category": "sports"})
	rec := httptest.NewRecorder()
	app.CategoryHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Noticia deportiva") {
		t.Error("expected the sports article")
	}
	if strings.Contains(body, "Noticia vecinal") {
		t.Error("unexpected article from another category")
	}
}

func TestArticleHandler(t *testing.T) {
	t.Run("renders a full article", func(t *testing.T) {
		app := testutil.SetupTestApp(t)
		article := testutil.CreateTestArticle(t, app, "Titular", "Contenido con **negrita**.", "local")

		req := mux.SetURLVars(testutil.MakeTestRequest("GET", "/news/"+article.ID, nil), map[string]string{"id": article.ID})
		rec := httptest.NewRecorder()
		app.ArticleHandler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<strong>negrita</strong>") {
			t.Error("expected rendered article body")
		}
	})

	t.Run("unknown id gets a 404 page", func(t *testing.T) {
		app := testutil.SetupTestApp(t)

		req := mux.SetURLVars(testutil.MakeTestRequest("GET", "/news/missing", nil), map[string]string{"id": "missing"})
		rec := httptest.NewRecorder()
		app.ArticleHandler(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func loginRequest(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.RequestWithUser(req, news.AnonymousUser())
}

func TestLoginPostHandler(t *testing.T) {
	t.Run("correct credentials open a session", func(t *testing.T) {
		app := testutil.SetupTestApp(t)

		rec := httptest.NewRecorder()
		app.LoginPostHandler(rec, loginRequest(testutil.TestAdminUser, testutil.TestAdminPassword))

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/admin" {
			t.Errorf("expected redirect to /admin, got %q", loc)
		}
		if len(rec.Result().Cookies()) == 0 {
			t.Error("expected a session cookie")
		}
	})

	t.Run("wrong credentials re-render the form", func(t *testing.T) {
		app := testutil.SetupTestApp(t)

		rec := httptest.NewRecorder()
		app.LoginPostHandler(rec, loginRequest(testutil.TestAdminUser, "wrong"))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), news.ErrIncorrectPassword.Error()) {
			t.Error("expected the error callout on the form")
		}
	})
}

func TestAdminHandler(t *testing.T) {
	t.Run("anonymous viewers are sent to login", func(t *testing.T) {
		app := testutil.SetupTestApp(t)

		rec := httptest.NewRecorder()
		app.AdminHandler(rec, testutil.MakeTestRequest("GET", "/admin", nil))

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login?reason=login_required") {
			t.Errorf("expected login redirect, got %q", loc)
		}
	})

	t.Run("admins get the panel with the article list", func(t *testing.T) {
		app := testutil.SetupTestApp(t)
		article := testutil.CreateTestArticle(t, app, "Panelazo", "Contenido", "local")

		rec := httptest.NewRecorder()
		app.AdminHandler(rec, testutil.MakeTestRequest("GET", "/admin", &news.User{Name: testutil.TestAdminUser}))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), article.Title) {
			t.Error("expected the article in the admin list")
		}
	})

	t.Run("edit parameter pre-fills the form", func(t *testing.T) {
		app := testutil.SetupTestApp(t)
		article := testutil.CreateTestArticle(t, app, "Editable", "Contenido original", "local")

		rec := httptest.NewRecorder()
		app.AdminHandler(rec, testutil.MakeTestRequest("GET", "/admin?edit="+article.ID, &news.User{Name: testutil.TestAdminUser}))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Contenido original") {
			t.Error("expected the article content in the edit form")
		}
	})
}

func TestAdminDeleteHandler(t *testing.T) {
	app := testutil.SetupTestApp(t)
	article := testutil.CreateTestArticle(t, app, "Borrar", "Contenido", "local")

	req := mux.SetURLVars(
		testutil.MakeTestRequest("POST", "/admin/news/"+article.ID+"/delete", &news.User{Name: testutil.TestAdminUser}),
		map[string]string{"id": article.ID},
	)
	rec := httptest.NewRecorder()
	app.AdminDeleteHandler(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/admin?msg=") {
		t.Errorf("expected success redirect, got %q", loc)
	}
	if _, err := app.Articles.Get(article.ID); err != news.ErrArticleNotFound {
		t.Errorf("expected article gone, got %v", err)
	}
}
