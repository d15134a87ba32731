package server

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/elprincipe/noticias/news"
	"github.com/gorilla/mux"
)

const (
	featuredCount = 3
	sidebarCount  = 5
)

// HomeHandler renders the front page: featured articles, the full list
// sorted by date, and the recent-news sidebar.
func (a *App) HomeHandler(rw http.ResponseWriter, req *http.Request) {
	articles, err := a.Articles.List()
	if err != nil {
		a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
		return
	}

	isAdmin := !currentUser(req).IsAnonymous()

	err = a.RenderTemplate(rw, "home.html", "index.html", map[string]interface{}{
		"Title":    "NOTICIAS PRINCIPE",
		"Featured": news.RenderList(news.Featured(articles, featuredCount), false),
		"Articles": news.RenderList(news.AllSorted(articles), isAdmin),
		"Sidebar":  news.RenderList(news.Recent(articles, sidebarCount), false),
		"Context":  req.Context(),
	})
	check(err)
}

// CategoryHandler renders the article list for one category. An unknown
// category renders an empty list, not an error.
func (a *App) CategoryHandler(rw http.ResponseWriter, req *http.Request) {
	category := mux.Vars(req)["category"]

	articles, err := a.Articles.ByCategory(category)
	if err != nil {
		a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
		return
	}

	isAdmin := !currentUser(req).IsAnonymous()

	err = a.RenderTemplate(rw, "category.html", "index.html", map[string]interface{}{
		"Title":    category,
		"Category": category,
		"Articles": news.RenderList(articles, isAdmin),
		"Context":  req.Context(),
	})
	check(err)
}

// ArticleHandler renders a single article in full, with its content rendered
// to HTML.
func (a *App) ArticleHandler(rw http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	article, err := a.Articles.Get(id)
	if err == news.ErrArticleNotFound {
		a.ErrorHandler(http.StatusNotFound, rw, req, err)
		return
	} else if err != nil {
		a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
		return
	}

	html, err := a.Rendering.Render(article.Content)
	if err != nil {
		a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
		return
	}

	slog.Debug("article viewed", "category", "article", "action", "view", "id", id)

	err = a.RenderTemplate(rw, "article.html", "index.html", map[string]interface{}{
		"Title":   article.Title,
		"Article": article,
		"Body":    template.HTML(html),
		"Context": req.Context(),
	})
	check(err)
}

// LoginHandler renders the login form.
func (a *App) LoginHandler(rw http.ResponseWriter, req *http.Request) {
	render := map[string]interface{}{
		"Title":   "Login",
		"Context": req.Context(),
	}

	if req.URL.Query().Get("reason") == "login_required" {
		render["loginRequired"] = true
		render["referrerValue"] = req.URL.Query().Get("referrer")
	}

	err := a.RenderTemplate(rw, "login.html", "index.html", render)
	check(err)
}

// LoginPostHandler checks the credential pair and opens an admin session.
func (a *App) LoginPostHandler(rw http.ResponseWriter, req *http.Request) {
	username := req.PostFormValue("username")
	password := req.PostFormValue("password")

	user, err := a.Auth.Authenticate(username, password)
	if err != nil {
		slog.Warn("login failed", "category", "auth", "action", "login", "username", username, "ip", req.RemoteAddr)
		rw.WriteHeader(http.StatusUnauthorized)
		err = a.RenderTemplate(rw, "login.html", "index.html", map[string]interface{}{
			"Title":          "Login",
			"calloutMessage": err.Error(),
			"calloutClasses": "np-error",
			"usernameValue":  username,
			"Context":        req.Context(),
		})
		check(err)
		return
	}

	session, err := a.Sessions.GetCookie(req, SessionName)
	if err != nil && session == nil {
		a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
		return
	}
	session.Options.MaxAge = a.Config.CookieExpiry
	session.Values["username"] = user.Name
	if err := a.Sessions.SaveCookie(req, rw, session); err != nil {
		a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
		return
	}

	slog.Info("user logged in", "category", "auth", "action", "login", "username", user.Name, "ip", req.RemoteAddr)
	http.Redirect(rw, req, "/admin", http.StatusSeeOther)
}

// LogoutPostHandler closes the admin session.
func (a *App) LogoutPostHandler(rw http.ResponseWriter, req *http.Request) {
	session, err := a.Sessions.GetCookie(req, SessionName)
	if err != nil && session == nil {
		a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
		return
	}

	username, _ := session.Values["username"].(string)

	if err := a.Sessions.DeleteCookie(req, rw, session); err != nil {
		a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
		return
	}

	slog.Info("user logged out", "category", "auth", "action", "logout", "username", username, "ip", req.RemoteAddr)
	http.Redirect(rw, req, "/", http.StatusSeeOther)
}

// ErrorHandler renders the error page with the given status code.
func (a *App) ErrorHandler(responseCode int, rw http.ResponseWriter, req *http.Request, errors ...error) {
	rw.WriteHeader(responseCode)
	err := a.RenderTemplate(rw, "error.html", "index.html", map[string]interface{}{
		"Title":   fmt.Sprintf("%d: %s", responseCode, http.StatusText(responseCode)),
		"Context": req.Context(),
		"Error": map[string]interface{}{
			"Code":       responseCode,
			"CodeString": http.StatusText(responseCode),
			"Errors":     errors,
		}})
	if err != nil {
		slog.Error("failed to render error page", "error", err)
		http.Error(rw, http.StatusText(responseCode), responseCode)
	}
}
