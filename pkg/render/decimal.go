package render

import (
	"github.com/shopspring/decimal"

	"github.com/offertio/dokgen/pkg/docdata"
)

var hundred = decimal.NewFromInt(100)

func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// vatPercent renders the context's VAT rate as a percentage without trailing
// zeros: 0.25 becomes "25".
func vatPercent(data docdata.Context) string {
	return docdata.FormatQuantity(data.Totals.VatRate.Mul(hundred))
}
