package server

import (
	"net/http"
	"net/url"
)

// RequireAdmin reports whether the request carries an authenticated admin.
// Anonymous viewers are redirected to the login page.
func (a *App) RequireAdmin(rw http.ResponseWriter, req *http.Request) bool {
	user := currentUser(req)
	if user.IsAnonymous() {
		loginURL := "/login?reason=login_required&referrer=" + url.QueryEscape(req.URL.String())
		http.Redirect(rw, req, loginURL, http.StatusSeeOther)
		return false
	}
	return true
}
