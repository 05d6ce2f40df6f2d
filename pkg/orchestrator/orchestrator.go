// Package orchestrator coordinates the full pipeline from stored template and
// document data to rendered output bytes.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/offertio/dokgen/pkg/blocks"
	"github.com/offertio/dokgen/pkg/docdata"
	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/render"
	"github.com/offertio/dokgen/pkg/renderers/htmldoc"
	"github.com/offertio/dokgen/pkg/renderers/textdoc"
	"github.com/offertio/dokgen/pkg/store"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithBlockCatalogue injects the block definition registry used when
// composing nodes.
func WithBlockCatalogue(catalogue *blocks.Registry) Option {
	return func(o *Orchestrator) {
		o.catalogue = catalogue
	}
}

// WithStore injects the template persistence backend, enabling requests that
// reference templates by id.
func WithStore(s store.Store) Option {
	return func(o *Orchestrator) {
		o.store = s
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger replaces the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates template lookup, node composition, theme
// resolution, and rendering. It applies sensible defaults (HTML renderer,
// built-in block catalogue) while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	catalogue       *blocks.Registry
	store           store.Store
	defaultRenderer string
	logger          *zap.Logger

	themeSelector  themeSelector
	themeName      string
	themeVariant   string
	themeFallbacks map[string]string

	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a document.
type Request struct {
	// Template supplies the layout directly. Optional when TemplateID is set
	// and a store is configured.
	Template *document.Template

	// OrganisationID and TemplateID select a stored template when Template is
	// nil.
	OrganisationID string
	TemplateID     string

	// Data is the document data context. Zero value renders the template in
	// preview mode with placeholder rows.
	Data docdata.Context

	// Renderer names the output renderer. Empty falls back to the configured
	// default.
	Renderer string

	// Title overrides the output title; empty falls back to the template name.
	Title string

	// ThemeName and ThemeVariant pick a theme when a selector is configured.
	// Empty values fall back to the orchestrator defaults.
	ThemeName    string
	ThemeVariant string
}

// Generate executes the lookup → compose → render sequence and returns the
// rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	template, err := o.resolveTemplate(ctx, req)
	if err != nil {
		return nil, err
	}

	composer := render.NewComposer(
		render.WithRegistry(o.catalogue),
		render.WithLogger(o.logger),
	)
	nodes := composer.Compose(template, req.Data)

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := render.Options{
		Title:  req.Title,
		Design: template.Design,
		Page:   template.Settings,
	}
	if options.Title == "" {
		options.Title = template.Name
	}

	themeConfig, err := o.resolveThemeConfig(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, err
	}
	options.Theme = themeConfig

	output, err := renderer.Render(ctx, nodes, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Debug("document rendered",
		zap.String("template", template.ID),
		zap.String("renderer", renderer.Name()),
		zap.Int("blocks", len(template.Blocks)),
		zap.Int("nodes", len(nodes)))
	return output, nil
}

func (o *Orchestrator) resolveTemplate(ctx context.Context, req Request) (document.Template, error) {
	if req.Template != nil {
		return *req.Template, nil
	}
	if req.TemplateID == "" {
		return document.Template{}, errors.New("orchestrator: template or template id is required")
	}
	if o.store == nil {
		return document.Template{}, errors.New("orchestrator: template id given but no store configured")
	}
	template, err := o.store.Get(ctx, req.OrganisationID, req.TemplateID)
	if err != nil {
		return document.Template{}, fmt.Errorf("orchestrator: load template %q: %w", req.TemplateID, err)
	}
	return template, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.catalogue == nil {
		o.catalogue = blocks.Default()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		html, err := htmldoc.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(html)
		}
		o.registry.MustRegister(textdoc.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
