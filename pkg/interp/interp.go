// Package interp expands {{namespace.field}} tokens inside block text against
// a document data context.
//
// The token table is fixed and finite. Unknown tokens stay verbatim in the
// output on purpose: a typo'd placeholder should be visibly wrong in the
// rendered document, not silently dropped. Missing context fields expand to
// the empty string. Expansion is one left-to-right pass; substituted values
// are never re-scanned, so a field value containing "{{...}}" cannot start an
// interpolation loop.
package interp

import (
	"regexp"
	"sort"
	"strings"

	"github.com/offertio/dokgen/pkg/docdata"
)

var tokenPattern = regexp.MustCompile(`\{\{\s*([a-z_]+\.[a-z_]+)\s*\}\}`)

type resolver func(docdata.Context) string

var tokens = map[string]resolver{
	"document.number":         func(c docdata.Context) string { return c.Document.Number },
	"document.date":           func(c docdata.Context) string { return docdata.FormatDate(c.Document.IssueDate) },
	"document.due_date":       func(c docdata.Context) string { return docdata.FormatDate(c.Document.DueDate) },
	"document.our_reference":  func(c docdata.Context) string { return c.Document.OurReference },
	"document.your_reference": func(c docdata.Context) string { return c.Document.YourReference },

	"invoice.number":   func(c docdata.Context) string { return c.Document.Number },
	"invoice.date":     func(c docdata.Context) string { return docdata.FormatDate(c.Document.IssueDate) },
	"invoice.due_date": func(c docdata.Context) string { return docdata.FormatDate(c.Document.DueDate) },
	"invoice.ocr":      func(c docdata.Context) string { return c.Document.OCR },

	"quote.number":      func(c docdata.Context) string { return c.Document.Number },
	"quote.date":        func(c docdata.Context) string { return docdata.FormatDate(c.Document.IssueDate) },
	"quote.valid_until": func(c docdata.Context) string { return docdata.FormatDate(c.Document.ValidUntil) },

	"customer.name":        func(c docdata.Context) string { return c.Customer.Name },
	"customer.address":     func(c docdata.Context) string { return c.Customer.Address },
	"customer.postal_code": func(c docdata.Context) string { return c.Customer.PostalCode },
	"customer.city":        func(c docdata.Context) string { return c.Customer.City },
	"customer.email":       func(c docdata.Context) string { return c.Customer.Email },
	"customer.phone":       func(c docdata.Context) string { return c.Customer.Phone },
	"customer.org_number":  func(c docdata.Context) string { return c.Customer.OrgNumber },

	"company.name":        func(c docdata.Context) string { return c.Company.Name },
	"company.address":     func(c docdata.Context) string { return c.Company.Address },
	"company.postal_code": func(c docdata.Context) string { return c.Company.PostalCode },
	"company.city":        func(c docdata.Context) string { return c.Company.City },
	"company.email":       func(c docdata.Context) string { return c.Company.Email },
	"company.phone":       func(c docdata.Context) string { return c.Company.Phone },
	"company.org_number":  func(c docdata.Context) string { return c.Company.OrgNumber },
	"company.vat_number":  func(c docdata.Context) string { return c.Company.VatNumber },
	"company.bankgiro":    func(c docdata.Context) string { return c.Company.Bankgiro },
	"company.plusgiro":    func(c docdata.Context) string { return c.Company.Plusgiro },
	"company.website":     func(c docdata.Context) string { return c.Company.Website },

	"totals.subtotal":  func(c docdata.Context) string { return docdata.FormatSEK(c.Totals.Subtotal) },
	"totals.vat":       func(c docdata.Context) string { return docdata.FormatSEK(c.Totals.VatAmount) },
	"totals.total":     func(c docdata.Context) string { return docdata.FormatSEK(c.Totals.Total) },
	"totals.deduction": func(c docdata.Context) string { return docdata.FormatSEK(c.Totals.Deduction) },
	"totals.payable":   func(c docdata.Context) string { return docdata.FormatSEK(c.Totals.Payable) },
}

// Expand replaces supported tokens with the string form of the corresponding
// context field. Unsupported tokens pass through verbatim.
func Expand(text string, ctx docdata.Context) string {
	if !strings.Contains(text, "{{") {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := tokenPattern.FindStringSubmatch(match)[1]
		resolve, ok := tokens[name]
		if !ok {
			return match
		}
		return resolve(ctx)
	})
}

// Supported reports whether a token name (without braces) is in the table.
func Supported(name string) bool {
	_, ok := tokens[name]
	return ok
}

// Tokens returns the sorted list of supported token names, for editor UIs
// offering a placeholder picker.
func Tokens() []string {
	out := make([]string, 0, len(tokens))
	for name := range tokens {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
