// Package htmldoc renders a resolved node list into a self-contained HTML
// document suitable for preview or downstream PDF conversion.
package htmldoc

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/offertio/dokgen/pkg/render"
	rendertemplate "github.com/offertio/dokgen/pkg/render/template"
	gotemplate "github.com/offertio/dokgen/pkg/render/template/gotemplate"
	"github.com/offertio/dokgen/pkg/style"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("htmldoc renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, nodes []render.Node, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("htmldoc renderer: template renderer is nil")
	}

	title := options.Title
	if title == "" {
		title = "Dokument"
	}

	fontFamily := options.Design.FontFamily
	if fontFamily == "" {
		fontFamily = style.FallbackFontFamily
	}

	data := map[string]any{
		"title":         title,
		"fontFamily":    fontFamily,
		"paperSize":     options.Page.PaperSize,
		"themeVarStyle": themeVarStyle(options),
		"blocks":        buildViews(nodes),
	}

	result, err := r.templates.RenderTemplate("document", data)
	if err != nil {
		return nil, fmt.Errorf("htmldoc renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// themeVarStyle flattens the resolved theme's CSS variables into a :root
// declaration block the page template inlines verbatim.
func themeVarStyle(options render.Options) string {
	if options.Theme == nil || len(options.Theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(options.Theme.CSSVars))
	for key := range options.Theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(options.Theme.CSSVars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
