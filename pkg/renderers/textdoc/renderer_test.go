package textdoc

import (
	"context"
	"strings"
	"testing"

	"github.com/offertio/dokgen/pkg/render"
	"github.com/offertio/dokgen/pkg/testsupport"
)

func TestRenderer_RendersInvoiceAsText(t *testing.T) {
	renderer := New()

	nodes := render.Compose(testsupport.InvoiceTemplate(), testsupport.InvoiceContext())
	out, err := renderer.Render(context.Background(), nodes, render.Options{Title: "Faktura 1042"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"FAKTURA 1042",
		"Brf Solhöjden",
		"Takrenovering",
		"Delsumma",
		"31 875,00 kr",
		"Bankgiro: 123-4567",
		"Godkänd för F-skatt",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q in:\n%s", want, text)
		}
	}
	if strings.Contains(text, "<") {
		t.Fatalf("markup leaked into plain text:\n%s", text)
	}
}

func TestRenderer_StripsInlineMarkup(t *testing.T) {
	renderer := New()

	nodes := []render.Node{{
		BlockID: "b1",
		Type:    "text",
		Content: render.Text{Text: "Viktigt <b>belopp</b>"},
	}}

	out, err := renderer.Render(context.Background(), nodes, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "Viktigt belopp" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderer_AlignsTableColumns(t *testing.T) {
	renderer := New()

	nodes := []render.Node{{
		BlockID: "b1",
		Type:    "table",
		Content: render.Table{
			Headers: []string{"Beskrivning", "Summa"},
			Rows: [][]string{
				{"Arbete", "24 000,00"},
				{"Material", "1 500,00"},
			},
		},
	}}

	out, err := renderer.Render(context.Background(), nodes, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 4 {
		t.Fatalf("expected header, rule, and two rows, got:\n%s", out)
	}
	// Numeric column is right-aligned: both amounts end at the same offset.
	if len(lines[2]) != len(lines[3]) {
		t.Fatalf("amount column not aligned:\n%s", out)
	}
}

func TestRenderer_ColumnWidthCountsRunes(t *testing.T) {
	renderer := New()

	// Same visible width on both rows; the first carries multi-byte runes.
	nodes := []render.Node{
		{
			BlockID: "b1",
			Type:    "columns",
			Content: render.Columns{Left: "Såghöjdens Bygg · Örebro", Right: "Offert 42"},
		},
		{
			BlockID: "b2",
			Type:    "columns",
			Content: render.Columns{Left: "Saghojdens Bygg - Orebro", Right: "Offert 42"},
		},
	}

	out, err := renderer.Render(context.Background(), nodes, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var widths []int
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		widths = append(widths, len([]rune(line)))
	}
	if len(widths) != 2 {
		t.Fatalf("expected two column rows, got:\n%s", out)
	}
	if widths[0] != widths[1] {
		t.Fatalf("right column misaligned: widths %v in:\n%s", widths, out)
	}
}

func TestRenderer_ContentTypeAndName(t *testing.T) {
	renderer := New()
	if renderer.Name() != "text" {
		t.Fatalf("unexpected name %s", renderer.Name())
	}
	if renderer.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %s", renderer.ContentType())
	}
}
