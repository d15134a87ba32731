package news

import "errors"

// Sentinel errors for news operations
var (
	ErrArticleNotFound   = errors.New("news not found")
	ErrMissingTitle      = errors.New("title is required")
	ErrMissingContent    = errors.New("content is required")
	ErrMissingCategory   = errors.New("category is required")
	ErrIncorrectPassword = errors.New("incorrect username or password")
)
