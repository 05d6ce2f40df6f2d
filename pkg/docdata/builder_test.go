package docdata

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/offertio/dokgen/pkg/document"
)

func TestBuild_DerivesTotalsFromLines(t *testing.T) {
	ctx := Build(DocumentInput{
		Kind: document.KindInvoice,
		Lines: []LineInput{
			{Description: "Arbete", Quantity: dec("3"), Unit: "dag", UnitPrice: dec("8000")},
			{Description: "Material", Quantity: dec("1"), UnitPrice: dec("1500")},
		},
	}, Customer{}, Company{})

	assertDecimal(t, "subtotal", ctx.Totals.Subtotal, "25500")
	assertDecimal(t, "vat", ctx.Totals.VatAmount, "6375")
	assertDecimal(t, "total", ctx.Totals.Total, "31875")
	assertDecimal(t, "payable", ctx.Totals.Payable, "31875")

	if len(ctx.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(ctx.Lines))
	}
	assertDecimal(t, "line total", ctx.Lines[0].Total, "24000")
}

func TestBuild_PercentAndFractionVatRatesAgree(t *testing.T) {
	lines := []LineInput{{Quantity: dec("1"), UnitPrice: dec("1000")}}

	percent := dec("25")
	fraction := dec("0.25")

	a := Build(DocumentInput{Lines: lines, VatRate: &percent}, Customer{}, Company{})
	b := Build(DocumentInput{Lines: lines, VatRate: &fraction}, Customer{}, Company{})

	if !a.Totals.VatAmount.Equal(b.Totals.VatAmount) {
		t.Fatalf("VAT mismatch: percent=%s fraction=%s", a.Totals.VatAmount, b.Totals.VatAmount)
	}
	assertDecimal(t, "vat", a.Totals.VatAmount, "250")
}

func TestBuild_MissingVatRateDefaultsTo25(t *testing.T) {
	ctx := Build(DocumentInput{
		Lines: []LineInput{{Quantity: dec("1"), UnitPrice: dec("100")}},
	}, Customer{}, Company{})

	assertDecimal(t, "vat rate", ctx.Totals.VatRate, "0.25")
	assertDecimal(t, "vat", ctx.Totals.VatAmount, "25")
}

func TestBuild_StoredTotalsOverrideDerived(t *testing.T) {
	subtotal := dec("9999")
	total := dec("12000")

	ctx := Build(DocumentInput{
		Lines:    []LineInput{{Quantity: dec("1"), UnitPrice: dec("100")}},
		Subtotal: &subtotal,
		Total:    &total,
	}, Customer{}, Company{})

	assertDecimal(t, "subtotal", ctx.Totals.Subtotal, "9999")
	assertDecimal(t, "total", ctx.Totals.Total, "12000")
	// VAT is still derived from the (overridden) subtotal.
	assertDecimal(t, "vat", ctx.Totals.VatAmount, "2499.75")
}

func TestBuild_DeductionReducesPayable(t *testing.T) {
	ctx := Build(DocumentInput{
		Lines:     []LineInput{{Quantity: dec("1"), UnitPrice: dec("10000")}},
		Deduction: dec("3000"),
	}, Customer{}, Company{})

	assertDecimal(t, "total", ctx.Totals.Total, "12500")
	assertDecimal(t, "payable", ctx.Totals.Payable, "9500")
}

func TestBuild_RoundsLineTotals(t *testing.T) {
	ctx := Build(DocumentInput{
		Lines: []LineInput{{Quantity: dec("0.333"), UnitPrice: dec("100")}},
	}, Customer{}, Company{})

	assertDecimal(t, "line total", ctx.Lines[0].Total, "33.3")
}

func TestHasLines(t *testing.T) {
	if (Context{}).HasLines() {
		t.Fatalf("empty context should have no lines")
	}
	ctx := Build(DocumentInput{Lines: []LineInput{{Quantity: dec("1")}}}, Customer{}, Company{})
	if !ctx.HasLines() {
		t.Fatalf("context with lines should report them")
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s: want %s, got %s", what, want, got)
	}
}
