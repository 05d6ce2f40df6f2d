// Package template defines the engine-agnostic template seam output
// renderers rely on, with a pongo2-backed adapter under gotemplate/.
package template

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract. The HTML document renderer programs against this seam so an
// alternative engine can be swapped in without touching node resolution.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
