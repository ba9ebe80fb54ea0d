package http

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"sync"
)

// ── View / Templates ─────────────────────────────────────────────────────────

// ViewEngine renders html/template files from a filesystem. Each template is
// parsed on first use and cached.
type ViewEngine struct {
	fsys  fs.FS
	ext   string
	funcs template.FuncMap

	mu    sync.RWMutex
	cache map[string]*template.Template
}

// NewViewEngine creates a ViewEngine over fsys.
// ext is the file extension (e.g. ".html"); funcs may be nil.
//
//	engine := gohttp.NewViewEngine(os.DirFS("./views"), ".html", nil)
func NewViewEngine(fsys fs.FS, ext string, funcs template.FuncMap) *ViewEngine {
	return &ViewEngine{
		fsys:  fsys,
		ext:   ext,
		funcs: funcs,
		cache: make(map[string]*template.Template),
	}
}

// Lookup returns the parsed template for name.
func (ve *ViewEngine) Lookup(name string) (*template.Template, error) {
	ve.mu.RLock()
	tmpl, ok := ve.cache[name]
	ve.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	file := name + ve.ext
	tmpl, err := template.New(path.Base(file)).Funcs(ve.funcs).ParseFS(ve.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("view %q: %w", name, err)
	}

	ve.mu.Lock()
	ve.cache[name] = tmpl
	ve.mu.Unlock()
	return tmpl, nil
}

// View renders a template with data and status.
// Rendering is buffered so a template error never leaves a half-written page.
//
//	engine.View(w, http.StatusOK, "index", data)
func (ve *ViewEngine) View(w http.ResponseWriter, status int, name string, data any) {
	tmpl, err := ve.Lookup(name)
	if err != nil {
		slog.Error("Template not found", "view", name, "error", err)
		http.Error(w, "Template not found: "+name, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("Template render error", "view", name, "error", err)
		http.Error(w, "Template render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
