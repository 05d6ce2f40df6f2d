package htmldoc

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/offertio/dokgen/pkg/render"
	"github.com/offertio/dokgen/pkg/style"
	"github.com/offertio/dokgen/pkg/testsupport"
)

func TestRenderer_RendersDocument(t *testing.T) {
	renderer := mustNew(t)

	nodes := render.Compose(testsupport.QuoteTemplate(), testsupport.QuoteContext())
	out, err := renderer.Render(context.Background(), nodes, render.Options{Title: "Offert 2025-0042"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		"<title>Offert 2025-0042</title>",
		"Granlund Bygg AB",
		"Takrenovering",
		"24 000,00",
		"Delsumma",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q", want)
		}
	}
	if !strings.Contains(html, "font-size:16px") {
		t.Fatalf("header tier not mapped to pixels")
	}
}

func TestRenderer_TitleFallsBackToDefault(t *testing.T) {
	renderer := mustNew(t)

	out, err := renderer.Render(context.Background(), nil, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<title>Dokument</title>") {
		t.Fatalf("default title missing")
	}
}

func TestRenderer_SanitizesBlockText(t *testing.T) {
	renderer := mustNew(t)

	nodes := []render.Node{{
		BlockID: "b1",
		Type:    "text",
		Style:   resolved(),
		Content: render.Text{Text: `Viktigt <b>belopp</b> <script>alert(1)</script>`},
	}}

	out, err := renderer.Render(context.Background(), nodes, render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	if strings.Contains(html, "<script>") {
		t.Fatalf("script tag survived sanitization")
	}
	if !strings.Contains(html, "<b>belopp</b>") {
		t.Fatalf("inline formatting stripped")
	}
}

func TestRenderer_EmitsThemeCSSVars(t *testing.T) {
	renderer := mustNew(t)

	out, err := renderer.Render(context.Background(), nil, render.Options{
		Theme: &theme.RendererConfig{
			Theme: "offertio",
			CSSVars: map[string]string{
				"--brand":  "#123456",
				"--accent": "#654321",
			},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "--accent: #654321;") || !strings.Contains(html, "--brand: #123456;") {
		t.Fatalf("theme css vars missing:\n%s", html)
	}
	// Sorted emission keeps output deterministic.
	if strings.Index(html, "--accent") > strings.Index(html, "--brand") {
		t.Fatalf("css vars not sorted")
	}
}

func TestRenderer_ContentTypeAndName(t *testing.T) {
	renderer := mustNew(t)
	if renderer.Name() != "html" {
		t.Fatalf("unexpected name %s", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %s", renderer.ContentType())
	}
}

func TestInlineStyle(t *testing.T) {
	rs := style.Resolved{
		FontSize:   style.SizeXL,
		FontWeight: style.WeightBold,
		Color:      "#111111",
		Align:      style.AlignRight,
		Padding:    style.Edges{Top: 4, Right: 8},
	}

	got := inlineStyle(rs)
	for _, want := range []string{
		"font-size:20px",
		"font-weight:700",
		"color:#111111",
		"text-align:right",
		"padding:4px 8px 0px 0px",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("style %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "margin") || strings.Contains(got, "border") {
		t.Fatalf("zero-valued properties leaked into %q", got)
	}
}

func mustNew(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func resolved() style.Resolved {
	return style.Resolved{
		FontSize:   style.SizeBase,
		FontWeight: style.WeightNormal,
		Align:      style.AlignLeft,
		Color:      style.FallbackColor,
	}
}
