package templater

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"path/filepath"

	"github.com/elprincipe/noticias/news"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Templater encapsulates the template map to prevent direct access. See
// RenderTemplate.
type Templater struct {
	templates map[string]*template.Template
	funcs     template.FuncMap
}

func New() *Templater {
	return &Templater{}
}

// Load loads or reloads template files from the filesystem. baseGlob refers
// to base templates (the page wrapper with header and sidebar) and mainGlob
// to the templates that fill them. Globs are of the standard Go format,
// i.e. templates/*.html
func (t *Templater) Load(baseGlob, mainGlob string) error {
	t.templates = make(map[string]*template.Template)
	layouts, err := filepath.Glob(mainGlob)
	if err != nil {
		return err
	}

	base, err := filepath.Glob(baseGlob)
	if err != nil {
		return err
	}

	titler := cases.Title(language.Spanish)

	t.funcs = template.FuncMap{
		"title":       titler.String,
		"pathEscape":  url.PathEscape,
		"queryEscape": url.QueryEscape,
	}

	for _, layout := range layouts {
		files := append(base, layout)
		t.templates[filepath.Base(layout)] = template.Must(template.New(filepath.Base(layout)).Funcs(t.funcs).ParseFiles(files...))
	}
	return nil
}

// RenderTemplate makes sure templates exist and renders them. Don't mix up
// name and base!
func (t *Templater) RenderTemplate(w io.Writer, name string, base string, data map[string]interface{}) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return fmt.Errorf("content template %s does not exist", name)
	}

	if tmpl.Lookup(base) == nil {
		return fmt.Errorf("base template %s does not exist", base)
	}

	if data["Context"] != nil {
		if user, ok := data["Context"].(context.Context).Value(news.UserKey).(*news.User); ok {
			data["User"] = user
		}
	}

	return tmpl.ExecuteTemplate(w, base, data)
}
