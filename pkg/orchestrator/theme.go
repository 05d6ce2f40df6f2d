package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

type themeSelector = theme.ThemeSelector

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeDefaults sets the theme and variant used when a request names
// neither.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.themeName = name
		o.themeVariant = variant
	}
}

// WithThemeFallbacks supplies fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// resolveThemeConfig turns the requested theme into a renderer configuration.
// No selector, or no theme to select, means no theme config; renderers fall
// back to their built-in styling.
func (o *Orchestrator) resolveThemeConfig(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	if name == "" {
		name = o.themeName
	}
	if variant == "" {
		variant = o.themeVariant
	}
	if name == "" {
		return nil, nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}
	return rendererConfigFromSelection(selection, o.themeFallbacks), nil
}

// rendererConfigFromSelection flattens a theme selection into the config
// renderers consume: variant values override base manifest values, fallback
// partials fill the gaps, and CSS variables are derived from the merged
// tokens.
func rendererConfigFromSelection(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	var variant theme.Variant
	if manifest.Variants != nil {
		variant = manifest.Variants[selection.Variant]
	}

	cfg.Partials = mergeStringMaps(fallbacks, manifest.Templates, variant.Templates)
	cfg.Tokens = mergeStringMaps(nil, manifest.Tokens, variant.Tokens)

	if len(cfg.Tokens) > 0 {
		cfg.CSSVars = make(map[string]string, len(cfg.Tokens))
		for key, value := range cfg.Tokens {
			cfg.CSSVars["--"+key] = value
		}
	}

	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStringMaps(nil, manifest.Assets.Files, variant.Assets.Files)
	if len(files) > 0 {
		cfg.AssetURL = func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return strings.TrimSuffix(prefix, "/") + "/" + file
		}
	}

	return cfg
}

func mergeStringMaps(maps ...map[string]string) map[string]string {
	var out map[string]string
	for _, m := range maps {
		if len(m) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		for key, value := range m {
			out[key] = value
		}
	}
	return out
}
