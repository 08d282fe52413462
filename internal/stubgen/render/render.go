// Package render composes complete HTML documents from page metadata,
// JSON-LD blocks, and body fragments. The escaping contract is carried by the
// type system: plain string fields are entity-escaped by html/template before
// interpolation, while template.HTML values are trusted fragments inserted
// as-is. Callers must only pass pre-rendered markup through the trusted slots.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Engine renders the generated document shapes.
type Engine struct {
	tmpl *template.Template
}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Engine{tmpl: tmpl}, nil
}

// PageContext is the template context for the shared page shell.
type PageContext struct {
	Lang         string
	SiteName     string
	Title        string
	Description  string
	CanonicalURL string
	Image        string
	OGType       string // "website" for listings, "music.song" for song pages
	JsonLD       template.HTML
	Body         template.HTML
	ScriptTag    template.HTML
	StyleTag     template.HTML
	Noscript     string
}

// RedirectContext is the template context for legacy-redirect documents.
// Redirects stack four mechanisms (meta refresh, location.replace, canonical,
// noindex robots) because no single technique is honored by every
// crawler/browser combination.
type RedirectContext struct {
	Lang      string
	Title     string
	TargetURL string
	Label     string
}

// SongBodyContext is the template context for a song page's static fragment.
type SongBodyContext struct {
	Name          string
	ArtistName    string
	DatePublished string
	Description   string
	AudioURL      string
	Embed         string
	Watch         string
}

// ListItem is one entry of a listing body.
type ListItem struct {
	Name   string
	URL    string
	Artist string
}

// ListBodyContext is the template context for playlist and archive listings.
type ListBodyContext struct {
	Title string
	Intro string
	Items []ListItem
}

// RenderPage renders a complete document from the shared shell.
func (e *Engine) RenderPage(ctx PageContext) (string, error) {
	return e.render("shell.html", ctx)
}

// RenderRedirect renders a legacy-redirect document.
func (e *Engine) RenderRedirect(ctx RedirectContext) (string, error) {
	return e.render("redirect.html", ctx)
}

// RenderSongBody renders the crawlable static fragment for a song page.
func (e *Engine) RenderSongBody(ctx SongBodyContext) (template.HTML, error) {
	s, err := e.render("song_body.html", ctx)
	return template.HTML(s), err
}

// RenderListBody renders a numbered link list for playlist and archive pages.
func (e *Engine) RenderListBody(ctx ListBodyContext) (template.HTML, error) {
	s, err := e.render("list_body.html", ctx)
	return template.HTML(s), err
}

func (e *Engine) render(name string, data interface{}) (string, error) {
	t := e.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", name, err)
	}

	return buf.String(), nil
}
