// Package post renders filtered feed entries into a Markdown blog post.
package post

import (
	_ "embed"
	"strings"
	"text/template"
	"time"

	"linkpost/internal/feed"
)

// templateText is the fixed template contract. The published site consumes
// this exact format; changing it changes the content format of every post.
//
//go:embed template.md
var templateText string

// RendererOption configures the Renderer.
type RendererOption func(*Renderer)

// WithMaxLinks caps the rendered post at the first n entries. Zero or
// negative means unlimited.
func WithMaxLinks(n int) RendererOption {
	return func(r *Renderer) {
		r.maxLinks = n
	}
}

// Renderer projects a filtered entry sequence and the current date into a
// Markdown document. Rendering is deterministic in (entries, now) and never
// reorders or deduplicates entries.
type Renderer struct {
	tmpl     *template.Template
	maxLinks int
}

// NewRenderer creates a renderer using the embedded template.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		tmpl: template.Must(template.New("post").Parse(templateText)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the Markdown post for the given entries and date.
func (r *Renderer) Render(entries []feed.Entry, now time.Time) (string, error) {
	if r.maxLinks > 0 && len(entries) > r.maxLinks {
		entries = entries[:r.maxLinks]
	}

	data := struct {
		Items []feed.Entry
		Date  time.Time
	}{Items: entries, Date: now}

	var buf strings.Builder
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
