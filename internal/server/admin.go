package server

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/elprincipe/noticias/news"
	"github.com/elprincipe/noticias/news/service"
	"github.com/gorilla/mux"
)

// maxUploadBytes bounds the multipart form held in memory per request.
const maxUploadBytes = 10 << 20

// AdminHandler renders the admin panel: the create form plus the full list
// with edit/delete controls.
func (a *App) AdminHandler(rw http.ResponseWriter, req *http.Request) {
	if !a.RequireAdmin(rw, req) {
		return
	}

	articles, err := a.Articles.AllSorted()
	if err != nil {
		a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
		return
	}

	data := map[string]interface{}{
		"Title":    "Panel de Administración",
		"Articles": news.RenderList(articles, true),
		"Context":  req.Context(),
	}

	// ?edit={id} pre-fills the form with an existing article.
	if editID := req.URL.Query().Get("edit"); editID != "" {
		article, err := a.Articles.Get(editID)
		if err == news.ErrArticleNotFound {
			data["calloutMessage"] = err.Error()
			data["calloutClasses"] = "np-error"
		} else if err != nil {
			a.ErrorHandler(http.StatusInternalServerError, rw, req, err)
			return
		} else {
			data["Editing"] = article
		}
	}

	if msg := req.URL.Query().Get("msg"); msg != "" {
		data["calloutMessage"] = msg
		data["calloutClasses"] = "np-success"
	}
	if errMsg := req.URL.Query().Get("err"); errMsg != "" {
		data["calloutMessage"] = errMsg
		data["calloutClasses"] = "np-error"
	}

	err = a.RenderTemplate(rw, "admin.html", "index.html", data)
	check(err)
}

// formUpload pulls the optional image file out of a parsed multipart form.
// The caller owns closing nothing: the service reads the stream to completion
// and the multipart temp files die with the request.
func formUpload(req *http.Request) (*service.ImageUpload, error) {
	file, header, err := req.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service.ImageUpload{Filename: header.Filename, Contents: file}, nil
}

// AdminCreateHandler handles the create form submission.
func (a *App) AdminCreateHandler(rw http.ResponseWriter, req *http.Request) {
	if !a.RequireAdmin(rw, req) {
		return
	}

	if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
		a.ErrorHandler(http.StatusBadRequest, rw, req, err)
		return
	}

	image, err := formUpload(req)
	if err != nil {
		a.ErrorHandler(http.StatusBadRequest, rw, req, err)
		return
	}

	title := req.PostFormValue("title")
	article, err := a.Articles.Create(title, req.PostFormValue("content"), req.PostFormValue("category"), image)
	if err != nil {
		slog.Warn("article create failed", "category", "article", "action", "create", "title", title, "reason", err.Error())
		http.Redirect(rw, req, "/admin?err="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	slog.Info("article created", "category", "article", "action", "create", "id", article.ID, "title", article.Title)
	http.Redirect(rw, req, "/admin?msg="+url.QueryEscape("Noticia agregada exitosamente."), http.StatusSeeOther)
}

// AdminUpdateHandler handles the edit form submission. A missing ID is
// reported, not swallowed.
func (a *App) AdminUpdateHandler(rw http.ResponseWriter, req *http.Request) {
	if !a.RequireAdmin(rw, req) {
		return
	}

	if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
		a.ErrorHandler(http.StatusBadRequest, rw, req, err)
		return
	}

	image, err := formUpload(req)
	if err != nil {
		a.ErrorHandler(http.StatusBadRequest, rw, req, err)
		return
	}

	id := mux.Vars(req)["id"]
	_, err = a.Articles.Update(id, req.PostFormValue("title"), req.PostFormValue("content"), req.PostFormValue("category"), image)
	if err != nil {
		slog.Warn("article update failed", "category", "article", "action", "update", "id", id, "reason", err.Error())
		http.Redirect(rw, req, "/admin?err="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	slog.Info("article updated", "category", "article", "action", "update", "id", id)
	http.Redirect(rw, req, "/admin?msg="+url.QueryEscape("Noticia actualizada."), http.StatusSeeOther)
}

// AdminDeleteHandler removes an article and its stored image.
func (a *App) AdminDeleteHandler(rw http.ResponseWriter, req *http.Request) {
	if !a.RequireAdmin(rw, req) {
		return
	}

	id := mux.Vars(req)["id"]
	if err := a.Articles.Delete(id); err != nil {
		slog.Warn("article delete failed", "category", "article", "action", "delete", "id", id, "reason", err.Error())
		http.Redirect(rw, req, "/admin?err="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	slog.Info("article deleted", "category", "article", "action", "delete", "id", id)
	http.Redirect(rw, req, "/admin?msg="+url.QueryEscape("Noticia eliminada."), http.StatusSeeOther)
}
