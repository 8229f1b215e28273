package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed templates
var embedded embed.FS

// EmbeddedTemplates returns the templates compiled into the binary.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err) // the directory is part of the build
	}
	return sub
}

// TemplateEngine handles HTML template rendering
type TemplateEngine struct {
	fsys      fs.FS
	templates *template.Template
	reload    bool // dev mode: reparse on each request
}

// NewTemplateEngine creates a template engine reading from fsys
func NewTemplateEngine(fsys fs.FS, reload bool) *TemplateEngine {
	return &TemplateEngine{
		fsys:   fsys,
		reload: reload,
	}
}

// NewDirTemplateEngine creates a template engine reading from a directory on disk
func NewDirTemplateEngine(dir string, reload bool) *TemplateEngine {
	return NewTemplateEngine(os.DirFS(dir), reload)
}

// Load parses the shared templates (layout and partials)
func (te *TemplateEngine) Load() error {
	tmpl, err := te.parseBase()
	if err != nil {
		return err
	}
	te.templates = tmpl
	return nil
}

func (te *TemplateEngine) parseBase() (*template.Template, error) {
	tmpl := template.New("").Funcs(template.FuncMap{
		"json":  toJSON,
		"dict":  dict,
		"lower": strings.ToLower,
	})

	err := fs.WalkDir(te.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip pages directory - these are loaded on-demand
		if d.IsDir() && d.Name() == "pages" {
			return fs.SkipDir
		}

		if !d.IsDir() && path.Ext(p) == ".html" {
			_, err = tmpl.ParseFS(te.fsys, p)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tmpl, nil
}

// toJSON encodes v for embedding in an HTML attribute; html/template
// escapes the result for the attribute context.
func toJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	return string(b), err
}

// dict builds a map from alternating keys and values so partials can take
// more than one argument.
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments (%d)", len(pairs))
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is %T, not string", pairs[i], pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// Render renders a page inside the layout
func (te *TemplateEngine) Render(w io.Writer, name string, data interface{}) error {
	base := te.templates
	if te.reload || base == nil {
		var err error
		if base, err = te.parseBase(); err != nil {
			return err
		}
	}

	// Clone base templates so page definitions never leak between pages
	tmpl, err := base.Clone()
	if err != nil {
		return err
	}

	tmpl, err = tmpl.ParseFS(te.fsys, path.Join("pages", name+".html"))
	if err != nil {
		return err
	}

	return tmpl.ExecuteTemplate(w, "layout", data)
}
