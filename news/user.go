package news

// User is the current viewer. The site has a single privileged account, so a
// user is either the logged-in admin or anonymous.
type User struct {
	Name string
}

// IsAnonymous returns true if the user is not authenticated.
func (u *User) IsAnonymous() bool {
	return u.Name == ""
}

// AnonymousUser returns the unauthenticated viewer.
func AnonymousUser() *User {
	return &User{}
}
