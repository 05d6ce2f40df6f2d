// Package blocks declares the catalogue of legal block types: each type's
// default content shape, default style, and which document kinds it is
// standard for.
package blocks

import (
	"fmt"
	"slices"
	"sync"

	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/style"
)

// Category groups block types for catalogue UIs.
type Category string

const (
	CategoryContent Category = "content"
	CategorySection Category = "section"
	CategoryLayout  Category = "layout"
	CategoryKind    Category = "kind-specific"
)

// Definition describes one block type. DefaultContent is a constructor so
// every insert gets an independent payload value; DefaultStyle is the sparse
// style record the resolver treats as the type default.
type Definition struct {
	Type           document.Type
	Category       Category
	Kinds          []document.Kind
	DefaultContent func() document.Content
	DefaultStyle   style.Settings
}

// standardFor reports whether the definition is standard for the kind.
func (d Definition) standardFor(kind document.Kind) bool {
	return slices.Contains(d.Kinds, kind)
}

// Registry tracks block type definitions keyed by type tag. Callers can
// register new types or override the built-in catalogue on a Clone.
type Registry struct {
	mu   sync.RWMutex
	defs map[document.Type]Definition
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{defs: make(map[document.Type]Definition)}
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := New()
	for tag, def := range r.defs {
		cloned.defs[tag] = def
	}
	return cloned
}

// Register associates a definition with its type tag. Existing entries are
// replaced.
func (r *Registry) Register(def Definition) error {
	if def.Type == "" {
		return fmt.Errorf("blocks: type tag is required")
	}
	if def.DefaultContent == nil {
		return fmt.Errorf("blocks: default content constructor for %q is nil", def.Type)
	}
	if len(def.Kinds) == 0 {
		return fmt.Errorf("blocks: %q must declare at least one document kind", def.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs[def.Type] = def
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying catalogue
// setup.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Definition fetches a definition by type tag.
func (r *Registry) Definition(tag document.Type) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[tag]
	return def, ok
}

// TypeDefaults returns the default content and style for a type tag.
func (r *Registry) TypeDefaults(tag document.Type) (document.Content, style.Settings, bool) {
	def, ok := r.Definition(tag)
	if !ok {
		return nil, style.Settings{}, false
	}
	return def.DefaultContent(), def.DefaultStyle, true
}

// IsLegalFor reports whether the type is standard for the document kind.
// The answer is advisory: storing an off-kind block is tolerated so template
// duplication and data import stay lossless, but catalogue UIs should filter
// on it before offering types.
func (r *Registry) IsLegalFor(tag document.Type, kind document.Kind) bool {
	def, ok := r.Definition(tag)
	if !ok {
		return false
	}
	return def.standardFor(kind)
}

// ListTypes returns the sorted type tags standard for the given kind.
func (r *Registry) ListTypes(kind document.Kind) []document.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]document.Type, 0, len(r.defs))
	for tag, def := range r.defs {
		if def.standardFor(kind) {
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags
}

// Types returns every registered type tag, sorted.
func (r *Registry) Types() []document.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]document.Type, 0, len(r.defs))
	for tag := range r.defs {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}
