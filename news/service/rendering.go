package service

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// RenderingService renders article content for the full-article page. List
// views show a plain-text preview; only the dedicated article page gets the
// rendered HTML.
type RenderingService interface {
	// Render converts article content (markdown) to sanitized HTML.
	Render(content string) (string, error)
}

// renderingService is the default implementation of RenderingService.
type renderingService struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewRenderingService creates a RenderingService with the given sanitizer
// policy applied to all rendered output.
func NewRenderingService(sanitizer *bluemonday.Policy) RenderingService {
	return &renderingService{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
		),
		sanitizer: sanitizer,
	}
}

// Render converts article content to sanitized HTML.
func (s *renderingService) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return s.sanitizer.Sanitize(buf.String()), nil
}
