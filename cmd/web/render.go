package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	handlersPkg "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/handlers"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/icons"
	mw "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/middleware"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/observability"
)

// renderer owns one template set per page: the shared layouts and partials cloned with the page's
// own "content" definition. In dev mode the sets are reparsed on each lookup.
type renderer struct {
	fsys  fs.FS
	dev   bool
	funcs template.FuncMap

	mu    sync.RWMutex
	pages map[string]*template.Template
}

func newRenderer(fsys fs.FS, dev bool, funcs template.FuncMap) *renderer {
	return &renderer{fsys: fsys, dev: dev, funcs: funcs}
}

func (rd *renderer) load() error {
	pages, err := rd.parse()
	if err != nil {
		return err
	}
	rd.mu.Lock()
	rd.pages = pages
	rd.mu.Unlock()
	return nil
}

func (rd *renderer) parse() (map[string]*template.Template, error) {
	var shared []string
	for _, pattern := range []string{"layouts/*.tmpl", "partials/*.tmpl"} {
		matches, err := fs.Glob(rd.fsys, pattern)
		if err != nil {
			return nil, err
		}
		shared = append(shared, matches...)
	}
	if len(shared) == 0 {
		return nil, fmt.Errorf("no layout or partial templates found")
	}
	base, err := template.New("_root").Funcs(rd.funcs).ParseFS(rd.fsys, shared...)
	if err != nil {
		return nil, err
	}

	pageFiles, err := fs.Glob(rd.fsys, "pages/*.tmpl")
	if err != nil {
		return nil, err
	}
	if len(pageFiles) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}
	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		set, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := set.ParseFS(rd.fsys, file); err != nil {
			return nil, err
		}
		pages[strings.TrimSuffix(path.Base(file), ".tmpl")] = set
	}
	return pages, nil
}

func (rd *renderer) lookup(page string) (*template.Template, error) {
	if rd.dev {
		pages, err := rd.parse()
		if err != nil {
			return nil, fmt.Errorf("template parse error: %w", err)
		}
		if t, ok := pages[page]; ok {
			return t, nil
		}
		return nil, fmt.Errorf("template %q not found", page)
	}
	rd.mu.RLock()
	defer rd.mu.RUnlock()
	if rd.pages == nil {
		return nil, fmt.Errorf("template not initialized")
	}
	t, ok := rd.pages[page]
	if !ok {
		return nil, fmt.Errorf("template %q not found", page)
	}
	return t, nil
}

func (a *app) funcMap() template.FuncMap {
	return template.FuncMap{
		"now":  func() time.Time { return a.now() },
		"t":    func(lang, key string) string { return a.bundle.T(lang, key) },
		"icon": icons.Glyph,
		// JSON-LD payloads are produced by seo.JSON from server-side values.
		"jsonld": func(s string) template.JS { return template.JS(s) },
	}
}

// renderPage executes the base layout of page.
func (a *app) renderPage(w http.ResponseWriter, r *http.Request, page string, status int, data handlersPkg.PageData) {
	a.execute(w, r, page, "base", status, data)
}

// renderTemplate executes a single named template (an htmx fragment) from page's set.
func (a *app) renderTemplate(w http.ResponseWriter, r *http.Request, page, name string, status int, data any) {
	a.execute(w, r, page, name, status, data)
}

func (a *app) execute(w http.ResponseWriter, r *http.Request, page, name string, status int, data any) {
	logger := observability.FromContext(r.Context())
	t, err := a.renderer.lookup(page)
	if err != nil {
		a.metrics.ObserveTemplateError(page)
		logger.Error("template lookup failed", zap.String("page", page), zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "template error")
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		a.metrics.ObserveTemplateError(page)
		logger.Error("template exec failed", zap.String("page", page), zap.String("template", name), zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "template error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
