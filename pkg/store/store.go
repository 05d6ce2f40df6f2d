// Package store persists document templates per organisation. The filesystem
// implementation keeps one YAML file per template; other backends implement
// the same interface.
package store

import (
	"context"
	"errors"
	"sort"

	"github.com/offertio/dokgen/pkg/document"
)

var (
	// ErrNotFound reports a lookup for a template id the organisation does
	// not have.
	ErrNotFound = errors.New("store: template not found")
	// ErrStaleTemplate reports an update whose version token no longer
	// matches the stored template. The caller re-reads and retries.
	ErrStaleTemplate = errors.New("store: template version is stale")
	// ErrMissingOrganisation reports a template without an owning
	// organisation; the store keys everything by organisation.
	ErrMissingOrganisation = errors.New("store: organisation id required")
)

// Store is the persistence contract for document templates. Updates are
// guarded by the template's version token: the stored version must match the
// incoming one, and every successful write bumps it.
type Store interface {
	List(ctx context.Context, organisationID string) ([]document.Template, error)
	Get(ctx context.Context, organisationID, templateID string) (document.Template, error)
	Create(ctx context.Context, template document.Template) (document.Template, error)
	Update(ctx context.Context, template document.Template) (document.Template, error)
	Delete(ctx context.Context, organisationID, templateID string) error
	Reorder(ctx context.Context, organisationID string, orderedIDs []string) error
}

// sortTemplates orders a listing by sort order, then name for stability when
// sort orders collide.
func sortTemplates(templates []document.Template) {
	sort.SliceStable(templates, func(i, j int) bool {
		if templates[i].SortOrder != templates[j].SortOrder {
			return templates[i].SortOrder < templates[j].SortOrder
		}
		return templates[i].Name < templates[j].Name
	})
}
