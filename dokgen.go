// Package dokgen renders quotes and invoices from block-based templates. The
// root package re-exports the orchestrator entry points so simple callers
// need a single import.
package dokgen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/offertio/dokgen/pkg/docdata"
	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/orchestrator"
	"github.com/offertio/dokgen/pkg/store"
)

// Request aliases the orchestrator request for callers importing only the
// root package.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML composes the template with the document data and renders it to
// HTML. It is the simplest entry point for callers that just want output
// bytes.
func GenerateHTML(ctx context.Context, template document.Template, data docdata.Context, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Template: &template,
		Data:     data,
		Renderer: "html",
	})
}

// GenerateText renders the template as plain text, for email bodies and
// previews.
func GenerateText(ctx context.Context, template document.Template, data docdata.Context, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Template: &template,
		Data:     data,
		Renderer: "text",
	})
}

// StandardTemplates returns the built-in starter templates, one per document
// kind.
func StandardTemplates() ([]document.Template, error) {
	return store.StandardTemplates()
}

// WithStore configures template persistence so requests can reference
// templates by id.
func WithStore(s store.Store) orchestrator.Option {
	return orchestrator.WithStore(s)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeDefaults sets the theme and variant used when a request names
// neither.
func WithThemeDefaults(name, variant string) orchestrator.Option {
	return orchestrator.WithThemeDefaults(name, variant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
