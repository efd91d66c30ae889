// Package templates renders the notification emails from html/template files
// embedded in the binary. Every page shares layout.html and is addressed by its
// file name without the extension.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

const layoutFile = "layout.html"

//go:embed html/*.html
var files embed.FS

var _ ports.TemplateRenderer = (*Renderer)(nil)

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	sub, err := fs.Sub(files, "html")
	if err != nil {
		return nil, err
	}
	return NewRendererFS(sub)
}

// NewRendererFS parses layout.html and every other *.html file of fsys.
func NewRendererFS(fsys fs.FS) (*Renderer, error) {
	layout, err := template.ParseFS(fsys, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	names, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layoutFile {
			continue
		}
		page, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if page, err = page.ParseFS(fsys, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, path.Ext(name))] = page
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the page templateID with data. Missing keys render empty.
func (r *Renderer) Render(templateID string, data map[string]any) (string, error) {
	page, ok := r.pages[templateID]
	if !ok {
		return "", errs.NewObjectNotFoundError("template", templateID)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("render %s: %w", templateID, err)
	}
	return buf.String(), nil
}

// Has reports whether templateID is known.
func (r *Renderer) Has(templateID string) bool {
	_, ok := r.pages[templateID]
	return ok
}
