package views

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/go-faster/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template names.
const (
	IndexTemplate    = "index"
	GridTemplate     = "grid"
	CartTemplate     = "cart_panel"
	CartPageTemplate = "cart_page"
	DetailTemplate   = "detail"
	ToastTemplate    = "toast"
)

// Renderer executes the embedded template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses every embedded .tmpl file.
func NewRenderer() (*Renderer, error) {
	tmpl, err := parseTemplates(templateFS)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl, err := template.New("_root").ParseFS(fsys, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}

// Templates exposes the parsed set, e.g. for gin's SetHTMLTemplate.
func (r *Renderer) Templates() *template.Template {
	return r.tmpl
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return errors.Wrapf(err, "render %s", name)
	}
	return nil
}

// RenderString executes the named template and returns the markup.
func (r *Renderer) RenderString(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
