package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"

	"khadamatFront/internal/i18n"
)

// Data is the payload handed to every page template. Payload carries the
// page-specific view model; Form holds submitted values for re-rendering.
type Data struct {
	Locale  i18n.Locale
	Dir     string
	Path    string
	Error   string
	Success string
	Form    map[string]string
	Payload interface{}
}

func NewData(r *http.Request) *Data {
	locale := i18n.FromContext(r.Context())
	return &Data{
		Locale: locale,
		Dir:    locale.Dir(),
		Path:   r.URL.Path,
		Form:   map[string]string{},
	}
}

var functions = template.FuncMap{
	"t": i18n.T,
}

// Renderer holds one parsed template set per page, built once at startup
// from the embedded ui files.
type Renderer struct {
	cache map[string]*template.Template
}

func New(files fs.FS) (*Renderer, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(files, "html/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).Funcs(functions).ParseFS(files,
			"html/base.layout.tmpl",
			"html/partials/*.tmpl",
			page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		cache[name] = ts
	}
	return &Renderer{cache: cache}, nil
}

// Page renders into a buffer first so a template failure never leaves a
// half-written response behind.
func (rd *Renderer) Page(w http.ResponseWriter, status int, page string, data *Data) error {
	ts, ok := rd.cache[page]
	if !ok {
		return fmt.Errorf("render: template %s does not exist", page)
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
	return nil
}
