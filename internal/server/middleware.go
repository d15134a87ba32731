package server

import (
	"context"
	"net/http"

	"github.com/elprincipe/noticias/news"
)

// SessionName is the login session cookie name.
const SessionName = "noticias-login"

// SessionMiddleware attaches the current user to the request context. Every
// downstream handler can assume news.UserKey is set, to the logged-in admin
// or to the anonymous viewer.
func (a *App) SessionMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		user := news.AnonymousUser()

		session, err := a.Sessions.GetCookie(req, SessionName)
		if err == nil && !session.IsNew {
			if name, ok := session.Values["username"].(string); ok {
				user = &news.User{Name: name}
			}
		}

		ctx := context.WithValue(req.Context(), news.UserKey, user)
		handler.ServeHTTP(rw, req.WithContext(ctx))
	})
}

// currentUser returns the user attached by SessionMiddleware.
func currentUser(req *http.Request) *news.User {
	if user, ok := req.Context().Value(news.UserKey).(*news.User); ok {
		return user
	}
	return news.AnonymousUser()
}
