// Package textdoc renders a resolved node list as plain text, useful for
// email bodies and quick terminal previews.
package textdoc

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/render"
)

const lineWidth = 72

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, nodes []render.Node, options render.Options) ([]byte, error) {
	var b strings.Builder

	title := options.Title
	if title != "" {
		b.WriteString(strings.ToUpper(title))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", min(len([]rune(title)), lineWidth)))
		b.WriteString("\n\n")
	}

	for _, node := range nodes {
		switch content := node.Content.(type) {
		case render.Text:
			writeParagraph(&b, stripMarkup(content.Text))
		case render.Columns:
			writeColumns(&b, stripMarkup(content.Left), stripMarkup(content.Right))
		case render.Table:
			writeTable(&b, content)
		case render.Lines:
			writeLines(&b, content)
		case render.Fields:
			writeFields(&b, content)
		case render.Totals:
			writeTotals(&b, content)
		case render.Image:
			if content.Alt != "" {
				writeParagraph(&b, fmt.Sprintf("[%s]", content.Alt))
			}
		case render.Signature:
			writeSignature(&b, content)
		case render.None:
			writeDivider(&b, node)
		}
	}

	return []byte(strings.TrimRight(b.String(), "\n") + "\n"), nil
}

func writeParagraph(b *strings.Builder, text string) {
	if text == "" {
		return
	}
	b.WriteString(text)
	b.WriteString("\n\n")
}

func writeColumns(b *strings.Builder, left, right string) {
	if left == "" && right == "" {
		return
	}
	pad := lineWidth - len([]rune(left)) - len([]rune(right))
	if pad < 2 {
		pad = 2
	}
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(right)
	b.WriteString("\n\n")
}

func writeTable(b *strings.Builder, table render.Table) {
	widths := make([]int, len(table.Headers))
	for i, h := range table.Headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, 0, len(cells))
		for i, cell := range cells {
			w := len([]rune(cell))
			if i < len(widths) {
				w = widths[i]
			}
			// Right-align everything but the first column; description reads
			// left, numbers read right.
			if i == 0 {
				parts = append(parts, cell+strings.Repeat(" ", w-len([]rune(cell))))
			} else {
				parts = append(parts, strings.Repeat(" ", w-len([]rune(cell)))+cell)
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteString("\n")
	}

	writeRow(table.Headers)
	total := len(widths)*2 - 2
	for _, w := range widths {
		total += w
	}
	b.WriteString(strings.Repeat("-", min(total, lineWidth)))
	b.WriteString("\n")
	for _, row := range table.Rows {
		writeRow(row)
	}
	b.WriteString("\n")
}

func writeLines(b *strings.Builder, lines render.Lines) {
	if lines.Heading == "" && len(lines.Lines) == 0 {
		return
	}
	if lines.Heading != "" {
		b.WriteString(lines.Heading)
		b.WriteString("\n")
	}
	for _, line := range lines.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeFields(b *strings.Builder, fields render.Fields) {
	if fields.Title != "" {
		b.WriteString(fields.Title)
		b.WriteString("\n")
	}
	for _, f := range fields.Fields {
		b.WriteString(f.Label)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	if note := stripMarkup(fields.Note); note != "" {
		b.WriteString(note)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeTotals(b *strings.Builder, totals render.Totals) {
	for _, row := range totals.Rows {
		pad := lineWidth - len([]rune(row.Label)) - len([]rune(row.Value))
		if pad < 2 {
			pad = 2
		}
		if row.Emphasis {
			b.WriteString(strings.Repeat("-", lineWidth))
			b.WriteString("\n")
		}
		b.WriteString(row.Label)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(row.Value)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeSignature(b *strings.Builder, sig render.Signature) {
	if text := stripMarkup(sig.Text); text != "" {
		b.WriteString(text)
		b.WriteString("\n")
	}
	if sig.ShowLine {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("_", 32))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeDivider(b *strings.Builder, node render.Node) {
	switch node.Type {
	case document.TypeDivider:
		b.WriteString(strings.Repeat("-", lineWidth))
		b.WriteString("\n\n")
	case document.TypePageBreak:
		b.WriteString("\f")
	default:
		b.WriteString("\n")
	}
}

var (
	stripOnce   sync.Once
	stripPolicy *bluemonday.Policy
)

// stripMarkup removes any inline HTML authors put in free text; plain text
// output carries no formatting.
func stripMarkup(raw string) string {
	stripOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(stripPolicy.Sanitize(raw))
}
