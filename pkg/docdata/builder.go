package docdata

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/offertio/dokgen/pkg/document"
)

// defaultVatRate is the Swedish standard VAT rate, applied when the document
// does not carry one.
var defaultVatRate = decimal.NewFromFloat(0.25)

// one marks the boundary between fractional (0..1) and percentage (0..100)
// VAT rate representations; both are accepted.
var one = decimal.NewFromInt(1)

// LineInput is one stored document line as supplied by the data source.
type LineInput struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	ImageURL    string
}

// DocumentInput carries the document fields the builder needs. Optional
// stored totals override the derived values; when absent they are computed
// from the lines.
type DocumentInput struct {
	Kind          document.Kind
	Number        string
	OCR           string
	IssueDate     time.Time
	DueDate       time.Time
	ValidUntil    time.Time
	OurReference  string
	YourReference string

	Lines []LineInput

	Subtotal  *decimal.Decimal
	Total     *decimal.Decimal
	VatRate   *decimal.Decimal
	Deduction decimal.Decimal
}

// Build produces the context for one render pass. Totals are derived
// deterministically: subtotal from the lines unless stored on the document,
// VAT from the (normalized) rate, payable as total minus deduction.
func Build(doc DocumentInput, customer Customer, company Company) Context {
	lines := make([]LineItem, 0, len(doc.Lines))
	lineSum := decimal.Zero
	for _, in := range doc.Lines {
		total := in.Quantity.Mul(in.UnitPrice).Round(2)
		lineSum = lineSum.Add(total)
		lines = append(lines, LineItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			UnitPrice:   in.UnitPrice,
			Total:       total,
			ImageURL:    in.ImageURL,
		})
	}

	subtotal := lineSum
	if doc.Subtotal != nil {
		subtotal = *doc.Subtotal
	}

	rate := NormalizeVatRate(doc.VatRate)
	vatAmount := subtotal.Mul(rate).Round(2)

	total := subtotal.Add(vatAmount)
	if doc.Total != nil {
		total = *doc.Total
	}

	info := DocumentInfo{
		Number:        doc.Number,
		OCR:           doc.OCR,
		IssueDate:     doc.IssueDate,
		DueDate:       doc.DueDate,
		ValidUntil:    doc.ValidUntil,
		OurReference:  doc.OurReference,
		YourReference: doc.YourReference,
	}

	return Context{
		Kind:     doc.Kind,
		Document: info,
		Customer: customer,
		Company:  company,
		Lines:    lines,
		Totals: Totals{
			Subtotal:  subtotal,
			VatRate:   rate,
			VatAmount: vatAmount,
			Total:     total,
			Deduction: doc.Deduction,
			Payable:   total.Sub(doc.Deduction),
		},
	}
}

// NormalizeVatRate maps an absent rate to the 25% default and a percentage
// representation (anything above 1) to its 0..1 fraction. Both `25` and
// `0.25` yield the same rate.
func NormalizeVatRate(rate *decimal.Decimal) decimal.Decimal {
	if rate == nil {
		return defaultVatRate
	}
	if rate.GreaterThan(one) {
		return rate.Div(decimal.NewFromInt(100))
	}
	return *rate
}
