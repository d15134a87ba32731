package service

import (
	"github.com/elprincipe/noticias/news"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines the interface for admin authentication. The site has a
// single configured admin account; the check is deliberately simple and the
// failure mode is a single generic error, whichever part of the pair was wrong.
type AuthService interface {
	// Authenticate verifies the credential pair and returns the admin user.
	Authenticate(username, password string) (*news.User, error)
}

// authService is the default implementation of AuthService.
type authService struct {
	adminUser    string
	passwordHash string
}

// NewAuthService creates an AuthService checking against the configured admin
// username and bcrypt password hash.
func NewAuthService(adminUser, passwordHash string) AuthService {
	return &authService{adminUser: adminUser, passwordHash: passwordHash}
}

func (s *authService) Authenticate(username, password string) (*news.User, error) {
	if username != s.adminUser {
		return nil, news.ErrIncorrectPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
	if err != nil {
		return nil, news.ErrIncorrectPassword
	}
	return &news.User{Name: username}, nil
}
