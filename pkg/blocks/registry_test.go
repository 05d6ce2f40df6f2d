package blocks

import (
	"slices"
	"testing"

	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/style"
)

func TestDefault_CataloguesAllStandardTypes(t *testing.T) {
	reg := Default()

	if got := len(reg.Types()); got != 24 {
		t.Fatalf("expected 24 catalogued types, got %d: %v", got, reg.Types())
	}

	for _, tag := range reg.Types() {
		def, ok := reg.Definition(tag)
		if !ok {
			t.Fatalf("definition missing for %s", tag)
		}
		if def.DefaultContent == nil {
			t.Fatalf("%s has no default content constructor", tag)
		}
		if len(def.Kinds) == 0 {
			t.Fatalf("%s declares no kinds", tag)
		}
	}
}

func TestDefault_KindSpecificTypes(t *testing.T) {
	reg := Default()

	invoiceOnly := []document.Type{document.TypePaymentInfo, document.TypeInvoiceNumber, document.TypeTaxNote}
	for _, tag := range invoiceOnly {
		if !reg.IsLegalFor(tag, document.KindInvoice) {
			t.Fatalf("%s should be standard for invoices", tag)
		}
		if reg.IsLegalFor(tag, document.KindQuote) {
			t.Fatalf("%s should not be standard for quotes", tag)
		}
	}

	quoteOnly := []document.Type{document.TypeValidity, document.TypeAcceptance}
	for _, tag := range quoteOnly {
		if !reg.IsLegalFor(tag, document.KindQuote) {
			t.Fatalf("%s should be standard for quotes", tag)
		}
		if reg.IsLegalFor(tag, document.KindInvoice) {
			t.Fatalf("%s should not be standard for invoices", tag)
		}
	}

	quoteTypes := reg.ListTypes(document.KindQuote)
	if slices.Contains(quoteTypes, document.TypePaymentInfo) {
		t.Fatalf("quote listing contains invoice-only type")
	}
	if !slices.Contains(quoteTypes, document.TypeTable) {
		t.Fatalf("quote listing missing shared type")
	}
}

func TestTypeDefaults_IndependentContentValues(t *testing.T) {
	reg := Default()

	first, _, ok := reg.TypeDefaults(document.TypeTable)
	if !ok {
		t.Fatalf("table defaults missing")
	}
	second, _, _ := reg.TypeDefaults(document.TypeTable)

	a := first.(document.TableContent)
	b := second.(document.TableContent)
	a.PlaceholderRows[0].Description = "ändrad"
	if b.PlaceholderRows[0].Description == "ändrad" {
		t.Fatalf("default content values share placeholder row backing array")
	}
}

func TestRegistry_CloneIsolation(t *testing.T) {
	reg := Default().Clone()
	reg.MustRegister(Definition{
		Type:           document.Type("qr-code"),
		Category:       CategoryContent,
		Kinds:          []document.Kind{document.KindInvoice},
		DefaultContent: func() document.Content { return document.EmptyContent{} },
	})

	if _, ok := reg.Definition("qr-code"); !ok {
		t.Fatalf("clone registration missing")
	}
	if _, ok := Default().Definition("qr-code"); ok {
		t.Fatalf("clone registration leaked into the shared catalogue")
	}
}

func TestRegister_Validation(t *testing.T) {
	reg := New()

	if err := reg.Register(Definition{}); err == nil {
		t.Fatalf("expected error for missing type tag")
	}
	if err := reg.Register(Definition{Type: "x", Kinds: bothKinds}); err == nil {
		t.Fatalf("expected error for nil content constructor")
	}
	if err := reg.Register(Definition{
		Type:           "x",
		DefaultContent: func() document.Content { return document.EmptyContent{} },
	}); err == nil {
		t.Fatalf("expected error for empty kinds")
	}
}

func TestDefault_HeaderStyleDefaults(t *testing.T) {
	_, styleDefaults, ok := Default().TypeDefaults(document.TypeHeader)
	if !ok {
		t.Fatalf("header defaults missing")
	}
	if styleDefaults.FontSize == nil || *styleDefaults.FontSize != style.Size2XL {
		t.Fatalf("unexpected header font size default: %v", styleDefaults.FontSize)
	}
	if styleDefaults.FontWeight == nil || *styleDefaults.FontWeight != style.WeightBold {
		t.Fatalf("unexpected header font weight default: %v", styleDefaults.FontWeight)
	}
}
