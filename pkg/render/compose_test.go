package render

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/offertio/dokgen/pkg/docdata"
	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/style"
	"github.com/offertio/dokgen/pkg/testsupport"
)

func TestCompose_IsDeterministic(t *testing.T) {
	tpl := testsupport.QuoteTemplate()
	data := testsupport.QuoteContext()

	first := Compose(tpl, data)
	second := Compose(tpl, data)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("compose not deterministic (-first +second):\n%s", diff)
	}
}

func TestCompose_DoesNotMutateInputs(t *testing.T) {
	tpl := testsupport.QuoteTemplate()
	snapshot := tpl.Clone()

	Compose(tpl, testsupport.QuoteContext())

	if diff := cmp.Diff(snapshot, tpl); diff != "" {
		t.Fatalf("compose mutated the template:\n%s", diff)
	}
}

func TestCompose_ExpandsTokens(t *testing.T) {
	nodes := Compose(testsupport.QuoteTemplate(), testsupport.QuoteContext())

	header := nodeByID(t, nodes, "b-header")
	columns := header.Content.(Columns)
	if columns.Left != "Granlund Bygg AB" {
		t.Fatalf("left column not expanded: %q", columns.Left)
	}
	if columns.Right != "Offert 2025-0042" {
		t.Fatalf("right column not expanded: %q", columns.Right)
	}

	footer := nodeByID(t, nodes, "b-footer")
	want := "Granlund Bygg AB · Org.nr 556123-4567"
	if footer.Content.(Text).Text != want {
		t.Fatalf("footer not expanded: %q", footer.Content.(Text).Text)
	}
}

func TestCompose_StylePrecedence(t *testing.T) {
	tpl := testsupport.QuoteTemplate()
	tpl.Design.PrimaryColor = "#336699"

	nodes := Compose(tpl, testsupport.QuoteContext())

	// Block override wins over everything.
	header := nodeByID(t, nodes, "b-header")
	if header.Style.FontSize != style.SizeLG {
		t.Fatalf("block font size override lost: %s", header.Style.FontSize)
	}
	// Design primary color fills blocks with no explicit color.
	details := nodeByID(t, nodes, "b-details")
	if details.Style.Color != "#336699" {
		t.Fatalf("design color not applied: %s", details.Style.Color)
	}
}

func TestCompose_SkipsUnknownTypesButKeepsThem(t *testing.T) {
	tpl := testsupport.QuoteTemplate()
	raw := json.RawMessage(`{"payload":"BCD\n002"}`)
	tpl.Blocks = append(tpl.Blocks, document.ContentBlock{
		ID:      "b-unknown",
		Type:    document.Type("qr-code"),
		Content: document.RawContent{Raw: raw},
	})

	nodes := Compose(tpl, testsupport.QuoteContext())

	for _, node := range nodes {
		if node.BlockID == "b-unknown" {
			t.Fatalf("unknown type produced a node")
		}
	}
	if len(nodes) != len(tpl.Blocks)-1 {
		t.Fatalf("expected %d nodes, got %d", len(tpl.Blocks)-1, len(nodes))
	}
	// The block itself survives in the template for a later save.
	if tpl.BlockIndex("b-unknown") == -1 {
		t.Fatalf("unknown block dropped from template")
	}
}

func TestCompose_SignatureGatedByDesignToggle(t *testing.T) {
	tpl := testsupport.QuoteTemplate()
	tpl.Blocks = append(tpl.Blocks, document.ContentBlock{
		ID:      "b-sign",
		Type:    document.TypeSignature,
		Content: document.EmptyContent{},
	})

	hidden := Compose(tpl, testsupport.QuoteContext())
	for _, node := range hidden {
		if node.BlockID == "b-sign" {
			t.Fatalf("signature rendered with toggle off")
		}
	}

	tpl.Design.ShowSignature = true
	shown := Compose(tpl, testsupport.QuoteContext())
	sign := nodeByID(t, shown, "b-sign")
	sig := sign.Content.(Signature)
	if !sig.ShowLine || sig.Text != "Underskrift" {
		t.Fatalf("unexpected signature content: %+v", sig)
	}
}

func TestCompose_TableUsesDocumentLines(t *testing.T) {
	nodes := Compose(testsupport.QuoteTemplate(), testsupport.QuoteContext())

	table := nodeByID(t, nodes, "b-table").Content.(Table)
	if table.Placeholder {
		t.Fatalf("document lines should not be placeholder")
	}
	wantRows := [][]string{
		{"Takrenovering", "3", "dag", "8 000,00", "24 000,00"},
		{"Materialkostnad", "1", "st", "1 500,00", "1 500,00"},
	}
	if diff := cmp.Diff(wantRows, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_TableFallsBackToPlaceholderRows(t *testing.T) {
	nodes := Compose(testsupport.QuoteTemplate(), docdata.Context{Kind: document.KindQuote})

	table := nodeByID(t, nodes, "b-table").Content.(Table)
	if !table.Placeholder {
		t.Fatalf("expected placeholder table without document lines")
	}
	if len(table.Rows) != 1 || table.Rows[0][0] != "Exempelartikel" {
		t.Fatalf("unexpected placeholder rows: %v", table.Rows)
	}
}

func TestCompose_TotalsRows(t *testing.T) {
	nodes := Compose(testsupport.QuoteTemplate(), testsupport.QuoteContext())

	totals := nodeByID(t, nodes, "b-totals").Content.(Totals)
	want := Totals{Rows: []TotalRow{
		{Label: "Delsumma", Value: "25 500,00 kr"},
		{Label: "Moms (25 %)", Value: "6 375,00 kr"},
		{Label: "Summa", Value: "31 875,00 kr", Emphasis: true},
	}}
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Fatalf("totals mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_TotalsWithDeduction(t *testing.T) {
	tpl := testsupport.QuoteTemplate()
	idx := tpl.BlockIndex("b-totals")
	tpl.Blocks[idx].Content = document.TotalsContent{
		ShowSubtotal: true, ShowVat: true, ShowTotal: true, ShowDeduction: true,
	}

	data := testsupport.InvoiceContextWithDeduction()
	nodes := Compose(tpl, data)

	totals := nodeByID(t, nodes, "b-totals").Content.(Totals)
	last := totals.Rows[len(totals.Rows)-1]
	if last.Label != "Att betala" || !last.Emphasis {
		t.Fatalf("expected emphasized payable row, got %+v", last)
	}
	deduction := totals.Rows[len(totals.Rows)-2]
	if deduction.Label != "Avdrag" || deduction.Value[0] != '-' {
		t.Fatalf("expected negative deduction row, got %+v", deduction)
	}
}

func TestCompose_TextOverridesApply(t *testing.T) {
	tpl := testsupport.QuoteTemplate()
	tpl.Design.TextOverrides = map[document.TextLabel]string{
		document.LabelTableTotal: "Belopp",
		document.LabelFooterText: "Egen fottext",
	}

	nodes := Compose(tpl, testsupport.QuoteContext())

	table := nodeByID(t, nodes, "b-table").Content.(Table)
	if table.Headers[len(table.Headers)-1] != "Belopp" {
		t.Fatalf("table header override lost: %v", table.Headers)
	}
	footer := nodeByID(t, nodes, "b-footer").Content.(Text)
	if footer.Text != "Egen fottext" {
		t.Fatalf("footer override lost: %q", footer.Text)
	}
}

func TestCompose_DocumentDetailsPerKind(t *testing.T) {
	quoteNodes := Compose(testsupport.QuoteTemplate(), testsupport.QuoteContext())
	quoteDetails := nodeByID(t, quoteNodes, "b-details").Content.(Fields)
	if quoteDetails.Fields[0].Label != "Offertnummer" {
		t.Fatalf("expected quote number label, got %+v", quoteDetails.Fields[0])
	}

	invoiceNodes := Compose(testsupport.InvoiceTemplate(), testsupport.InvoiceContext())
	invoiceDetails := nodeByID(t, invoiceNodes, "b-details").Content.(Fields)
	if invoiceDetails.Fields[0].Label != "Fakturanummer" {
		t.Fatalf("expected invoice number label, got %+v", invoiceDetails.Fields[0])
	}
	lastField := invoiceDetails.Fields[len(invoiceDetails.Fields)-1]
	if lastField.Label != "Förfallodatum" || lastField.Value != "2025-04-09" {
		t.Fatalf("expected due date field, got %+v", lastField)
	}
}

func nodeByID(t *testing.T, nodes []Node, id string) Node {
	t.Helper()
	for _, node := range nodes {
		if node.BlockID == id {
			return node
		}
	}
	t.Fatalf("node %q not found", id)
	return Node{}
}
