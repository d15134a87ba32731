package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/elprincipe/noticias/news"
	"github.com/gorilla/mux"
)

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}

// APIListHandler returns the full article list.
func (a *App) APIListHandler(rw http.ResponseWriter, req *http.Request) {
	articles, err := a.Articles.List()
	if err != nil {
		writeJSON(rw, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": err.Error(),
		})
		return
	}
	writeJSON(rw, http.StatusOK, articles)
}

// APICreateHandler creates an article from a multipart form (title, content,
// category, optional image file). The server assigns the ID and date,
// whatever the client sent.
func (a *App) APICreateHandler(rw http.ResponseWriter, req *http.Request) {
	if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(rw, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": err.Error(),
		})
		return
	}

	image, err := formUpload(req)
	if err != nil {
		writeJSON(rw, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": err.Error(),
		})
		return
	}

	article, err := a.Articles.Create(req.PostFormValue("title"), req.PostFormValue("content"), req.PostFormValue("category"), image)
	switch err {
	case nil:
	case news.ErrMissingTitle, news.ErrMissingContent, news.ErrMissingCategory:
		writeJSON(rw, http.StatusBadRequest, map[string]interface{}{
			"success": false, "message": err.Error(),
		})
		return
	default:
		writeJSON(rw, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": err.Error(),
		})
		return
	}

	slog.Info("article created", "category", "article", "action", "create", "id", article.ID, "title", article.Title)
	writeJSON(rw, http.StatusOK, map[string]interface{}{
		"success": true,
		"news":    article,
	})
}

// APIDeleteHandler removes an article by ID, releasing its stored image.
// Unknown IDs get an explicit 404.
func (a *App) APIDeleteHandler(rw http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	err := a.Articles.Delete(id)
	if err == news.ErrArticleNotFound {
		writeJSON(rw, http.StatusNotFound, map[string]interface{}{
			"success": false, "message": "News not found",
		})
		return
	} else if err != nil {
		writeJSON(rw, http.StatusInternalServerError, map[string]interface{}{
			"success": false, "message": err.Error(),
		})
		return
	}

	slog.Info("article deleted", "category", "article", "action", "delete", "id", id)
	writeJSON(rw, http.StatusOK, map[string]interface{}{"success": true})
}

// WeatherHandler returns current conditions for the widget. Scraper failures
// degrade to the fixed fallback conditions; the widget never sees an error.
func (a *App) WeatherHandler(rw http.ResponseWriter, req *http.Request) {
	conditions, err := a.Weather.CurrentConditions(req.Context())
	if err != nil {
		slog.Warn("weather fetch failed, serving fallback", "category", "weather", "error", err)
		conditions = news.FallbackConditions()
	}
	writeJSON(rw, http.StatusOK, conditions)
}
