package document

import "github.com/offertio/dokgen/pkg/style"

// Type tags one block kind. The full catalogue with defaults and kind
// legality lives in pkg/blocks; this package only fixes the tags and the
// payload shape each tag decodes into.
type Type string

const (
	// Content blocks.
	TypeHeader    Type = "header"
	TypeSubheader Type = "subheader"
	TypeText      Type = "text"
	TypeTable     Type = "table"
	TypeImage     Type = "image"
	TypeLogo      Type = "logo"

	// Section blocks.
	TypeCompanyInfo     Type = "company-info"
	TypeDocumentDetails Type = "document-details"
	TypeCustomerInfo    Type = "customer-info"
	TypeContactInfo     Type = "contact-info"
	TypeReferenceInfo   Type = "reference-info"
	TypeTotals          Type = "totals"
	TypeTerms           Type = "terms"
	TypeSignature       Type = "signature"
	TypeFooter          Type = "footer"

	// Layout blocks.
	TypeDivider   Type = "divider"
	TypeSpacer    Type = "spacer"
	TypeHeaderRow Type = "header-row"
	TypePageBreak Type = "page-break"

	// Invoice-only blocks.
	TypePaymentInfo   Type = "payment-info"
	TypeInvoiceNumber Type = "invoice-number"
	TypeTaxNote       Type = "tax-note"

	// Quote-only blocks.
	TypeValidity   Type = "validity"
	TypeAcceptance Type = "acceptance"
)

// ContentBlock is one typed, styleable unit in a template. The id is unique
// within its template for the template's lifetime and the type never changes
// once the block exists; changing visual behavior means removing the block
// and inserting a new one.
type ContentBlock struct {
	ID      string          `json:"id"`
	Type    Type            `json:"type"`
	Content Content         `json:"content"`
	Style   *style.Settings `json:"style,omitempty"`
}

// Clone returns a deep copy of the block.
func (b ContentBlock) Clone() ContentBlock {
	out := b
	if b.Content != nil {
		out.Content = b.Content.CloneContent()
	}
	out.Style = b.Style.Clone()
	return out
}

// Content is the tagged union of block payloads. Each block type decodes into
// one of the concrete shapes below; types unknown to this version decode into
// RawContent so the template round-trips losslessly.
type Content interface {
	CloneContent() Content
}

// TextContent is the shared payload for free-text blocks (header, subheader,
// text, terms, footer, tax-note, validity). Text may contain interpolation
// tokens, expanded at render time.
type TextContent struct {
	Text string `json:"text"`
}

// TableHeaders are the column labels of the line-items table. Defaults are
// Swedish; design-option text overrides replace them at render time.
type TableHeaders struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	UnitPrice   string `json:"unitPrice"`
	Total       string `json:"total"`
}

// PlaceholderRow is a sample line shown when a template is previewed without
// a real document behind it.
type PlaceholderRow struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
}

// TableContent configures the line-items table. Rows always come from the
// document data context when the document has stored lines; PlaceholderRows
// apply only in template-preview mode.
type TableContent struct {
	Headers         TableHeaders     `json:"headers"`
	ShowUnitColumn  bool             `json:"showUnitColumn"`
	PlaceholderRows []PlaceholderRow `json:"placeholderRows,omitempty"`
}

// TotalsContent toggles which computed totals lines render.
type TotalsContent struct {
	ShowSubtotal  bool `json:"showSubtotal"`
	ShowVat       bool `json:"showVat"`
	ShowTotal     bool `json:"showTotal"`
	ShowDeduction bool `json:"showDeduction"`
}

// ImageContent references an inline image by URL. The URL is an opaque string
// supplied by the asset-storage collaborator.
type ImageContent struct {
	URL   string `json:"url"`
	Alt   string `json:"alt,omitempty"`
	Width int    `json:"width,omitempty"`
}

// EmptyContent is the payload for blocks that carry no data of their own
// (logo, divider, spacer, page-break, invoice-number, signature).
type EmptyContent struct{}

// HeaderRowContent is a two-column layout row; both sides may contain
// interpolation tokens.
type HeaderRowContent struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// InfoContent toggles which fields a company/customer/contact info section
// shows. Field names come straight from the data context.
type InfoContent struct {
	Heading     string `json:"heading,omitempty"`
	ShowAddress bool   `json:"showAddress"`
	ShowEmail   bool   `json:"showEmail"`
	ShowPhone   bool   `json:"showPhone"`
	ShowOrgNr   bool   `json:"showOrgNr"`
}

// DocumentDetailsContent configures the title block at the top of the
// document.
type DocumentDetailsContent struct {
	Title       string `json:"title"`
	ShowNumber  bool   `json:"showNumber"`
	ShowDate    bool   `json:"showDate"`
	ShowDueDate bool   `json:"showDueDate"`
}

// ReferenceContent labels the our-reference / your-reference pair.
type ReferenceContent struct {
	OurLabel  string `json:"ourLabel"`
	YourLabel string `json:"yourLabel"`
}

// PaymentInfoContent configures the invoice payment section. The account
// numbers themselves come from the company record in the data context.
type PaymentInfoContent struct {
	ShowBankgiro bool   `json:"showBankgiro"`
	ShowPlusgiro bool   `json:"showPlusgiro"`
	ShowOCR      bool   `json:"showOcr"`
	Message      string `json:"message,omitempty"`
}

// AcceptanceContent configures the quote acceptance section.
type AcceptanceContent struct {
	Text              string `json:"text"`
	ShowSignatureLine bool   `json:"showSignatureLine"`
}

func (c TextContent) CloneContent() Content            { return c }
func (c TotalsContent) CloneContent() Content          { return c }
func (c ImageContent) CloneContent() Content           { return c }
func (c EmptyContent) CloneContent() Content           { return c }
func (c HeaderRowContent) CloneContent() Content       { return c }
func (c InfoContent) CloneContent() Content            { return c }
func (c DocumentDetailsContent) CloneContent() Content { return c }
func (c ReferenceContent) CloneContent() Content       { return c }
func (c PaymentInfoContent) CloneContent() Content     { return c }
func (c AcceptanceContent) CloneContent() Content      { return c }

// CloneContent copies the table payload including its placeholder rows.
func (c TableContent) CloneContent() Content {
	out := c
	if c.PlaceholderRows != nil {
		out.PlaceholderRows = make([]PlaceholderRow, len(c.PlaceholderRows))
		copy(out.PlaceholderRows, c.PlaceholderRows)
	}
	return out
}
