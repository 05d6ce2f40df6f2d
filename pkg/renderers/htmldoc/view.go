package htmldoc

import (
	"fmt"
	"strings"

	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/render"
	"github.com/offertio/dokgen/pkg/style"
)

// blockView is the flattened per-node shape handed to the page template.
// One struct covers every content kind; the template switches on Kind and
// reads only the fields that kind fills.
type blockView struct {
	Kind  string `json:"kind"`
	Style string `json:"style"`

	Text  string `json:"text,omitempty"`
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`

	Headers     []string   `json:"headers,omitempty"`
	Rows        [][]string `json:"rows,omitempty"`
	Placeholder bool       `json:"placeholder,omitempty"`

	Heading string   `json:"heading,omitempty"`
	Lines   []string `json:"lines,omitempty"`

	Title  string      `json:"title,omitempty"`
	Fields []fieldView `json:"fields,omitempty"`
	Note   string      `json:"note,omitempty"`
	Totals []totalView `json:"totals,omitempty"`

	URL      string `json:"url,omitempty"`
	Alt      string `json:"alt,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	ShowLine bool   `json:"showLine,omitempty"`
}

type fieldView struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type totalView struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Emphasis bool   `json:"emphasis,omitempty"`
}

func buildViews(nodes []render.Node) []blockView {
	views := make([]blockView, 0, len(nodes))
	for _, node := range nodes {
		view := blockView{Style: inlineStyle(node.Style)}

		switch content := node.Content.(type) {
		case render.Text:
			view.Kind = "text"
			view.Text = sanitizeText(content.Text)
		case render.Columns:
			view.Kind = "columns"
			view.Left = sanitizeText(content.Left)
			view.Right = sanitizeText(content.Right)
		case render.Table:
			view.Kind = "table"
			view.Headers = content.Headers
			view.Rows = content.Rows
			view.Placeholder = content.Placeholder
		case render.Lines:
			view.Kind = "lines"
			view.Heading = content.Heading
			view.Lines = content.Lines
		case render.Fields:
			view.Kind = "fields"
			view.Title = content.Title
			view.Note = sanitizeText(content.Note)
			for _, f := range content.Fields {
				view.Fields = append(view.Fields, fieldView{Label: f.Label, Value: f.Value})
			}
		case render.Totals:
			view.Kind = "totals"
			for _, row := range content.Rows {
				view.Totals = append(view.Totals, totalView{Label: row.Label, Value: row.Value, Emphasis: row.Emphasis})
			}
		case render.Image:
			view.Kind = "image"
			// Last declaration wins, so the image alignment overrides the
			// generic text alignment already in the style string.
			view.Style += fmt.Sprintf(";text-align:%s", node.Style.ImageAlign)
			view.URL = content.URL
			view.Alt = content.Alt
			view.Width = content.Width
			if node.Style.LogoMaxHeight > 0 {
				view.Height = node.Style.LogoMaxHeight
			}
		case render.Signature:
			view.Kind = "signature"
			view.Text = sanitizeText(content.Text)
			view.ShowLine = content.ShowLine
		case render.None:
			view.Kind = layoutKind(node)
			view.Height = node.Style.SpacerHeight
		default:
			continue
		}

		views = append(views, view)
	}
	return views
}

func layoutKind(node render.Node) string {
	switch node.Type {
	case document.TypeSpacer:
		return "spacer"
	case document.TypePageBreak:
		return "pagebreak"
	default:
		return "divider"
	}
}

// inlineStyle flattens a resolved style into a CSS declaration list. Zero
// spacing and absent colors emit nothing, keeping the markup close to what a
// hand-written invoice template would carry.
func inlineStyle(rs style.Resolved) string {
	var parts []string
	add := func(format string, args ...any) {
		parts = append(parts, fmt.Sprintf(format, args...))
	}

	add("font-size:%dpx", fontSizePx(rs.FontSize))
	add("font-weight:%d", fontWeightValue(rs.FontWeight))
	if rs.Color != "" {
		add("color:%s", rs.Color)
	}
	add("text-align:%s", rs.Align)
	if rs.Padding != (style.Edges{}) {
		add("padding:%dpx %dpx %dpx %dpx", rs.Padding.Top, rs.Padding.Right, rs.Padding.Bottom, rs.Padding.Left)
	}
	if rs.Margin != (style.Edges{}) {
		add("margin:%dpx %dpx %dpx %dpx", rs.Margin.Top, rs.Margin.Right, rs.Margin.Bottom, rs.Margin.Left)
	}
	if rs.Background != "" {
		add("background:%s", rs.Background)
	}
	if rs.BorderWidth > 0 {
		color := rs.BorderColor
		if color == "" {
			color = "#000"
		}
		add("border:%dpx solid %s", rs.BorderWidth, color)
	}
	if rs.BorderRadius > 0 {
		add("border-radius:%dpx", rs.BorderRadius)
	}
	return strings.Join(parts, ";")
}
