package document

import (
	"encoding/json"
	"fmt"

	"github.com/offertio/dokgen/pkg/style"
)

// RawContent preserves the undecoded payload of a block whose type this
// version does not know. It marshals back byte-for-byte, so templates written
// by a newer registry survive a load/save cycle here untouched.
type RawContent struct {
	Raw json.RawMessage `json:"-"`
}

// CloneContent copies the raw bytes.
func (c RawContent) CloneContent() Content {
	out := RawContent{}
	if c.Raw != nil {
		out.Raw = make(json.RawMessage, len(c.Raw))
		copy(out.Raw, c.Raw)
	}
	return out
}

// MarshalJSON emits the preserved bytes verbatim.
func (c RawContent) MarshalJSON() ([]byte, error) {
	if len(c.Raw) == 0 {
		return []byte("null"), nil
	}
	return c.Raw, nil
}

type blockEnvelope struct {
	ID      string          `json:"id"`
	Type    Type            `json:"type"`
	Content json.RawMessage `json:"content"`
	Style   *style.Settings `json:"style,omitempty"`
}

// UnmarshalJSON decodes the envelope and dispatches the content payload on
// the type tag. Unknown tags fall back to RawContent.
func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var env blockEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("document: decode block: %w", err)
	}

	content, err := decodeContent(env.Type, env.Content)
	if err != nil {
		return err
	}

	b.ID = env.ID
	b.Type = env.Type
	b.Content = content
	b.Style = env.Style
	return nil
}

// MarshalJSON re-wraps the typed payload in the persisted envelope shape.
func (b ContentBlock) MarshalJSON() ([]byte, error) {
	content, err := json.Marshal(b.Content)
	if err != nil {
		return nil, fmt.Errorf("document: encode block %q content: %w", b.ID, err)
	}
	return json.Marshal(blockEnvelope{
		ID:      b.ID,
		Type:    b.Type,
		Content: content,
		Style:   b.Style,
	})
}

func decodeContent(tag Type, raw json.RawMessage) (Content, error) {
	shape := contentShape(tag)
	if shape == nil {
		keep := make(json.RawMessage, len(raw))
		copy(keep, raw)
		return RawContent{Raw: keep}, nil
	}
	if len(raw) == 0 || string(raw) == "null" {
		return reify(shape), nil
	}
	if err := json.Unmarshal(raw, shape); err != nil {
		return nil, fmt.Errorf("document: decode %q content: %w", tag, err)
	}
	return reify(shape), nil
}

// contentShape returns a pointer to a zero payload for known tags, nil for
// unknown ones.
func contentShape(tag Type) any {
	switch tag {
	case TypeHeader, TypeSubheader, TypeText, TypeTerms, TypeFooter, TypeTaxNote, TypeValidity:
		return &TextContent{}
	case TypeTable:
		return &TableContent{}
	case TypeTotals:
		return &TotalsContent{}
	case TypeImage:
		return &ImageContent{}
	case TypeLogo, TypeDivider, TypeSpacer, TypePageBreak, TypeInvoiceNumber, TypeSignature:
		return &EmptyContent{}
	case TypeHeaderRow:
		return &HeaderRowContent{}
	case TypeCompanyInfo, TypeCustomerInfo, TypeContactInfo:
		return &InfoContent{}
	case TypeDocumentDetails:
		return &DocumentDetailsContent{}
	case TypeReferenceInfo:
		return &ReferenceContent{}
	case TypePaymentInfo:
		return &PaymentInfoContent{}
	case TypeAcceptance:
		return &AcceptanceContent{}
	}
	return nil
}

func reify(shape any) Content {
	switch v := shape.(type) {
	case *TextContent:
		return *v
	case *TableContent:
		return *v
	case *TotalsContent:
		return *v
	case *ImageContent:
		return *v
	case *EmptyContent:
		return *v
	case *HeaderRowContent:
		return *v
	case *InfoContent:
		return *v
	case *DocumentDetailsContent:
		return *v
	case *ReferenceContent:
		return *v
	case *PaymentInfoContent:
		return *v
	case *AcceptanceContent:
		return *v
	}
	return nil
}
