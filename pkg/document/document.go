// Package document defines the persisted template model: a named, ordered
// list of typed content blocks plus document-kind and design options. The
// JSON shape of these types is the de-facto storage schema and must stay
// field-for-field compatible with existing stored templates.
package document

import "github.com/offertio/dokgen/pkg/style"

// Kind selects which class of document a template produces.
type Kind string

const (
	KindQuote   Kind = "quote"
	KindInvoice Kind = "invoice"
)

// Valid reports whether the kind is one of the two known document kinds.
func (k Kind) Valid() bool {
	return k == KindQuote || k == KindInvoice
}

// TextLabel identifies one piece of boilerplate text that design options can
// override without editing block content. The set is fixed.
type TextLabel string

const (
	LabelTableDescription TextLabel = "table_desc"
	LabelTableQuantity    TextLabel = "table_qty"
	LabelTableUnit        TextLabel = "table_unit"
	LabelTableUnitPrice   TextLabel = "table_price"
	LabelTableTotal       TextLabel = "table_total"
	LabelFooterText       TextLabel = "footer_text"
	LabelSignatureHint    TextLabel = "signature_hint"
	LabelAcceptanceText   TextLabel = "acceptance_text"
	LabelPaymentTerms     TextLabel = "payment_terms"
)

// LogoPosition places the company logo inside header-style blocks.
type LogoPosition string

const (
	LogoLeft   LogoPosition = "left"
	LogoCenter LogoPosition = "center"
	LogoRight  LogoPosition = "right"
)

// DesignOptions are template-wide presentation choices. FontFamily and
// PrimaryColor participate in style resolution; the rest are consumed
// directly by renderers.
type DesignOptions struct {
	FontFamily        string               `json:"fontFamily,omitempty"`
	PrimaryColor      string               `json:"primaryColor,omitempty"`
	LogoPosition      LogoPosition         `json:"logoPosition,omitempty"`
	ShowSignature     bool                 `json:"showSignature"`
	ShowProductImages bool                 `json:"showProductImages"`
	TextOverrides     map[TextLabel]string `json:"textOverrides,omitempty"`
}

// StyleDefaults extracts the subset of design options the style resolver
// consults.
func (d DesignOptions) StyleDefaults() style.DesignDefaults {
	return style.DesignDefaults{
		FontFamily:   d.FontFamily,
		PrimaryColor: d.PrimaryColor,
	}
}

// TextOverride returns the override for a label, or the supplied default when
// no override is configured.
func (d DesignOptions) TextOverride(label TextLabel, fallback string) string {
	if v, ok := d.TextOverrides[label]; ok && v != "" {
		return v
	}
	return fallback
}

// Settings are page-level options handed to the export collaborator.
type Settings struct {
	PaperSize       string `json:"paperSize,omitempty"`
	ShowPageNumbers bool   `json:"showPageNumbers"`
}

// Template is one named, persisted block layout for a document kind. It is
// owned by an organisation; SortOrder orders sibling templates of the same
// organisation and is unrelated to block ordering. Version is an optimistic
// concurrency token maintained by the persistence collaborator: mutation
// functions never touch it, the store bumps it on every successful save.
type Template struct {
	ID             string         `json:"id"`
	OrganisationID string         `json:"organisationId"`
	Name           string         `json:"name"`
	Kind           Kind           `json:"documentKind"`
	Blocks         []ContentBlock `json:"blocks"`
	Design         DesignOptions  `json:"designOptions"`
	Settings       Settings       `json:"settings"`
	SortOrder      int            `json:"sortOrder"`
	Version        int            `json:"version"`
}

// Clone returns a deep copy of the template. Mutation functions clone before
// touching anything so callers can keep reading the old value.
func (t Template) Clone() Template {
	out := t
	out.Blocks = make([]ContentBlock, len(t.Blocks))
	for i, b := range t.Blocks {
		out.Blocks[i] = b.Clone()
	}
	if t.Design.TextOverrides != nil {
		overrides := make(map[TextLabel]string, len(t.Design.TextOverrides))
		for k, v := range t.Design.TextOverrides {
			overrides[k] = v
		}
		out.Design.TextOverrides = overrides
	}
	return out
}

// BlockIndex returns the position of the block with the given id, or -1.
func (t Template) BlockIndex(id string) int {
	for i, b := range t.Blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Block returns the block with the given id.
func (t Template) Block(id string) (ContentBlock, bool) {
	if i := t.BlockIndex(id); i >= 0 {
		return t.Blocks[i], true
	}
	return ContentBlock{}, false
}
