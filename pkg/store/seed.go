package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/google/uuid"

	"github.com/offertio/dokgen/pkg/document"
)

//go:embed seeds/*.yaml
var seedsFS embed.FS

// StandardTemplates returns the built-in starter templates, one per document
// kind. They carry no organisation; Seed assigns ownership when installing.
func StandardTemplates() ([]document.Template, error) {
	entries, err := fs.ReadDir(seedsFS, "seeds")
	if err != nil {
		return nil, fmt.Errorf("store: read seed templates: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	templates := make([]document.Template, 0, len(entries))
	for _, entry := range entries {
		data, err := seedsFS.ReadFile("seeds/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("store: read seed %q: %w", entry.Name(), err)
		}
		template, err := decodeTemplate(data)
		if err != nil {
			return nil, fmt.Errorf("store: seed %q: %w", entry.Name(), err)
		}
		templates = append(templates, template)
	}
	return templates, nil
}

// Seed installs the standard templates for an organisation that has none yet.
// Each installed copy gets a fresh id so later edits never collide with the
// seed names. A non-empty listing makes Seed a no-op.
func Seed(ctx context.Context, s Store, organisationID string) ([]document.Template, error) {
	if organisationID == "" {
		return nil, ErrMissingOrganisation
	}

	existing, err := s.List(ctx, organisationID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, nil
	}

	standards, err := StandardTemplates()
	if err != nil {
		return nil, err
	}

	installed := make([]document.Template, 0, len(standards))
	for i, template := range standards {
		template.ID = uuid.NewString()
		template.OrganisationID = organisationID
		template.SortOrder = i
		created, err := s.Create(ctx, template)
		if err != nil {
			return nil, err
		}
		installed = append(installed, created)
	}
	return installed, nil
}
