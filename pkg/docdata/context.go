// Package docdata assembles the read-only data context a render pass is
// performed against: document fields, customer, company, line items, and
// computed totals. The builder performs no I/O; every input is an
// already-fetched value supplied by the persistence collaborator.
package docdata

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/offertio/dokgen/pkg/document"
)

// DocumentInfo is the per-document slice of the context.
type DocumentInfo struct {
	Number        string
	OCR           string
	IssueDate     time.Time
	DueDate       time.Time
	ValidUntil    time.Time
	OurReference  string
	YourReference string
}

// Customer is the customer slice of the context.
type Customer struct {
	Name       string
	Address    string
	PostalCode string
	City       string
	Email      string
	Phone      string
	OrgNumber  string
}

// Company is the issuing-company slice of the context. LogoURL is an opaque
// string from the asset-storage collaborator; it is never fetched or
// validated here.
type Company struct {
	Name       string
	Address    string
	PostalCode string
	City       string
	Email      string
	Phone      string
	OrgNumber  string
	VatNumber  string
	Bankgiro   string
	Plusgiro   string
	Website    string
	LogoURL    string
}

// LineItem is one resolved document line.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	ImageURL    string
}

// Totals are the computed money fields for the document.
type Totals struct {
	Subtotal  decimal.Decimal
	VatRate   decimal.Decimal
	VatAmount decimal.Decimal
	Total     decimal.Decimal
	Deduction decimal.Decimal
	Payable   decimal.Decimal
}

// Context is the snapshot consumed by interpolation and by data-driven
// blocks. It is rebuilt whenever source data changes and never mutated by the
// renderer.
type Context struct {
	Kind     document.Kind
	Document DocumentInfo
	Customer Customer
	Company  Company
	Lines    []LineItem
	Totals   Totals
}

// HasLines reports whether the document carried its own line items. When it
// did not, the line-items table renders a block's placeholder rows instead
// (template-preview mode).
func (c Context) HasLines() bool {
	return len(c.Lines) > 0
}
