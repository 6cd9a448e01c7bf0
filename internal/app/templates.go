package app

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

//go:embed web
var webFS embed.FS

const (
	layoutTemplatePath = "web/templates/layout.gohtml"
	pagesTemplateGlob  = "web/templates/pages/*.gohtml"
)

// Page names, one per file in web/templates/pages.
const (
	pageMonth = "month"
	pageWeek  = "week"
	pageDay   = "day"
)

var (
	pageCache = mustPageCache()
	minifier  = newMinifier()
)

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	return m
}

func mustPageCache() map[string]*template.Template {
	cache, err := newPageCache()
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded templates: %v", err))
	}
	return cache
}

// newPageCache parses every page together with the shared layout.
func newPageCache() (map[string]*template.Template, error) {
	pages, err := fs.Glob(webFS, pagesTemplateGlob)
	if err != nil {
		return nil, err
	}
	cache := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("base").ParseFS(webFS, layoutTemplatePath, page)
		if err != nil {
			return nil, err
		}
		cache[strings.TrimSuffix(path.Base(page), path.Ext(page))] = tmpl
	}
	return cache, nil
}

// StaticFS returns the embedded stylesheet directory, rooted so that it can
// be served under /static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	return sub
}

// renderPage executes page into a buffer, minifies it and writes it to w.
// Nothing is written to w if either step fails.
func renderPage(w http.ResponseWriter, r *http.Request, page string, data any) {
	logger := ctxlog.Logger(r.Context())
	tmpl, ok := pageCache[page]
	if !ok {
		logger.Error("Unknown page template", "page", page)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	raw := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(raw, "base", data); err != nil {
		logger.Error("Error rendering page", "page", page, "err", err)
		http.Error(w, ErrFailedToRender, http.StatusInternalServerError)
		return
	}

	out, err := minifier.Bytes("text/html", raw.Bytes())
	if err != nil {
		logger.Warn("Error minifying page", "page", page, "err", err)
		out = raw.Bytes()
	}

	pageViews.WithLabelValues(page).Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(out); err != nil {
		logger.Error("Error writing response", "err", err)
	}
}
