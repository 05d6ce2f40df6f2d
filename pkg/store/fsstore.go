package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/offertio/dokgen/pkg/document"
)

const fileExtension = ".yaml"

// FSOption configures the filesystem store.
type FSOption func(*FSStore)

// WithLogger replaces the default no-op logger.
func WithLogger(logger *zap.Logger) FSOption {
	return func(s *FSStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// FSStore keeps one YAML file per template under <root>/<organisation>/<id>.yaml.
// The mutex serialises writers within the process; cross-process coordination
// is out of scope.
type FSStore struct {
	mu     sync.RWMutex
	root   string
	logger *zap.Logger
}

var _ Store = (*FSStore)(nil)

// NewFS constructs a filesystem store rooted at dir, creating it if needed.
func NewFS(dir string, options ...FSOption) (*FSStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("store: root directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root %q: %w", dir, err)
	}

	s := &FSStore{root: dir, logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

func (s *FSStore) List(_ context.Context, organisationID string) ([]document.Template, error) {
	if organisationID == "" {
		return nil, ErrMissingOrganisation
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.orgDir(organisationID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: list templates for %q: %w", organisationID, err)
	}

	var templates []document.Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}
		template, err := s.read(filepath.Join(s.orgDir(organisationID), entry.Name()))
		if err != nil {
			// One corrupt file should not hide the rest of the listing.
			s.logger.Warn("skipping unreadable template file",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}
		templates = append(templates, template)
	}

	sortTemplates(templates)
	return templates, nil
}

func (s *FSStore) Get(_ context.Context, organisationID, templateID string) (document.Template, error) {
	if organisationID == "" {
		return document.Template{}, ErrMissingOrganisation
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.read(s.path(organisationID, templateID))
}

func (s *FSStore) Create(_ context.Context, template document.Template) (document.Template, error) {
	if template.OrganisationID == "" {
		return document.Template{}, ErrMissingOrganisation
	}
	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	template.Version = 1

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(template.OrganisationID, template.ID)
	if _, err := os.Stat(path); err == nil {
		return document.Template{}, fmt.Errorf("store: template %q already exists", template.ID)
	}
	if err := s.write(template); err != nil {
		return document.Template{}, err
	}

	s.logger.Debug("template created",
		zap.String("organisation", template.OrganisationID),
		zap.String("template", template.ID))
	return template, nil
}

func (s *FSStore) Update(_ context.Context, template document.Template) (document.Template, error) {
	if template.OrganisationID == "" {
		return document.Template{}, ErrMissingOrganisation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read(s.path(template.OrganisationID, template.ID))
	if err != nil {
		return document.Template{}, err
	}
	if current.Version != template.Version {
		return document.Template{}, fmt.Errorf("store: update template %q: stored version %d, got %d: %w",
			template.ID, current.Version, template.Version, ErrStaleTemplate)
	}

	template.Version++
	if err := s.write(template); err != nil {
		return document.Template{}, err
	}

	s.logger.Debug("template updated",
		zap.String("organisation", template.OrganisationID),
		zap.String("template", template.ID),
		zap.Int("version", template.Version))
	return template, nil
}

func (s *FSStore) Delete(_ context.Context, organisationID, templateID string) error {
	if organisationID == "" {
		return ErrMissingOrganisation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(organisationID, templateID))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: delete template %q: %w", templateID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("store: delete template %q: %w", templateID, err)
	}
	return nil
}

// Reorder rewrites the sort order of an organisation's templates to match
// orderedIDs. Every listed id must exist; templates not listed keep their
// relative order after the listed ones.
func (s *FSStore) Reorder(_ context.Context, organisationID string, orderedIDs []string) error {
	if organisationID == "" {
		return ErrMissingOrganisation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]document.Template)
	entries, err := os.ReadDir(s.orgDir(organisationID))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: reorder templates for %q: %w", organisationID, err)
	}
	var listing []document.Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}
		template, err := s.read(filepath.Join(s.orgDir(organisationID), entry.Name()))
		if err != nil {
			continue
		}
		byID[template.ID] = template
		listing = append(listing, template)
	}
	sortTemplates(listing)

	for _, id := range orderedIDs {
		if _, ok := byID[id]; !ok {
			return fmt.Errorf("store: reorder: template %q: %w", id, ErrNotFound)
		}
	}

	listed := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		listed[id] = i
	}

	next := len(orderedIDs)
	for _, template := range listing {
		order, ok := listed[template.ID]
		if !ok {
			order = next
			next++
		}
		if template.SortOrder == order {
			continue
		}
		template.SortOrder = order
		template.Version++
		if err := s.write(template); err != nil {
			return err
		}
	}
	return nil
}

func (s *FSStore) orgDir(organisationID string) string {
	return filepath.Join(s.root, organisationID)
}

func (s *FSStore) path(organisationID, templateID string) string {
	return filepath.Join(s.orgDir(organisationID), templateID+fileExtension)
}

func (s *FSStore) read(path string) (document.Template, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return document.Template{}, ErrNotFound
	}
	if err != nil {
		return document.Template{}, fmt.Errorf("store: read %q: %w", path, err)
	}
	return decodeTemplate(data)
}

func (s *FSStore) write(template document.Template) error {
	data, err := encodeTemplate(template)
	if err != nil {
		return err
	}
	dir := s.orgDir(template.OrganisationID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: create organisation dir %q: %w", dir, err)
	}
	path := s.path(template.OrganisationID, template.ID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %q: %w", path, err)
	}
	return nil
}
