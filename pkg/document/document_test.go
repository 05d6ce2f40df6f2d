package document

import (
	"testing"

	"github.com/offertio/dokgen/pkg/style"
)

func TestTemplate_CloneIsIndependent(t *testing.T) {
	tpl := Template{
		ID:   "tpl-1",
		Kind: KindInvoice,
		Design: DesignOptions{
			TextOverrides: map[TextLabel]string{LabelFooterText: "original"},
		},
		Blocks: []ContentBlock{
			{
				ID:      "b1",
				Type:    TypeText,
				Content: TextContent{Text: "hej"},
				Style:   &style.Settings{Color: style.Ptr("#111111")},
			},
		},
	}

	clone := tpl.Clone()
	clone.Blocks[0].Content = TextContent{Text: "ändrad"}
	*clone.Blocks[0].Style.Color = "#999999"
	clone.Design.TextOverrides[LabelFooterText] = "ändrad"

	if got := tpl.Blocks[0].Content.(TextContent).Text; got != "hej" {
		t.Fatalf("clone shares block content: %s", got)
	}
	if *tpl.Blocks[0].Style.Color != "#111111" {
		t.Fatalf("clone shares style pointer")
	}
	if tpl.Design.TextOverrides[LabelFooterText] != "original" {
		t.Fatalf("clone shares text overrides map")
	}
}

func TestTemplate_BlockLookup(t *testing.T) {
	tpl := Template{Blocks: []ContentBlock{
		{ID: "a", Type: TypeText, Content: TextContent{}},
		{ID: "b", Type: TypeDivider, Content: EmptyContent{}},
	}}

	if idx := tpl.BlockIndex("b"); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := tpl.BlockIndex("missing"); idx != -1 {
		t.Fatalf("expected -1 for missing id, got %d", idx)
	}

	block, ok := tpl.Block("a")
	if !ok || block.Type != TypeText {
		t.Fatalf("unexpected lookup result: %+v ok=%v", block, ok)
	}
}

func TestKind_Valid(t *testing.T) {
	if !KindQuote.Valid() || !KindInvoice.Valid() {
		t.Fatalf("known kinds should be valid")
	}
	if Kind("receipt").Valid() {
		t.Fatalf("unknown kind should be invalid")
	}
}

func TestDesignOptions_TextOverride(t *testing.T) {
	design := DesignOptions{TextOverrides: map[TextLabel]string{
		LabelTableTotal: "Belopp",
		LabelFooterText: "",
	}}

	if got := design.TextOverride(LabelTableTotal, "Summa"); got != "Belopp" {
		t.Fatalf("expected override, got %s", got)
	}
	// Empty overrides do not shadow the fallback.
	if got := design.TextOverride(LabelFooterText, "standard"); got != "standard" {
		t.Fatalf("expected fallback for empty override, got %s", got)
	}
	if got := design.TextOverride(LabelPaymentTerms, "30 dagar"); got != "30 dagar" {
		t.Fatalf("expected fallback for absent override, got %s", got)
	}
}
