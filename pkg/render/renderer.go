package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/offertio/dokgen/pkg/document"
)

// Options carry per-request data output renderers can use without touching
// the node pipeline.
type Options struct {
	// Title is the document title used for the output envelope (e.g. the
	// HTML <title>). Empty falls back to the template name.
	Title string
	// Design exposes the template-wide design options to the renderer for
	// concerns outside style resolution: logo position, signature toggle,
	// text overrides already applied upstream.
	Design document.DesignOptions
	// Page carries the template's page-level settings for the export layer.
	Page document.Settings
	// Theme is an optional resolved go-theme configuration; renderers derive
	// CSS variables and asset URLs from it.
	Theme *theme.RendererConfig
}

// Renderer converts a resolved node list into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, nodes []Node, options Options) ([]byte, error)
}
