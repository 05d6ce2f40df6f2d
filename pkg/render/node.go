// Package render turns a template plus a document data context into an
// ordered list of resolved render nodes, and defines the contract output
// renderers implement to turn that list into bytes (HTML, plain text, ...).
package render

import (
	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/style"
)

// Node is the transient result of rendering one block: type, fully resolved
// style, and fully expanded content. Nodes are regenerated on every render
// pass and never persisted.
type Node struct {
	BlockID string         `json:"blockId"`
	Type    document.Type  `json:"type"`
	Style   style.Resolved `json:"style"`
	Content Content        `json:"content"`
}

// Content is the union of resolved content shapes. Unlike the persisted
// payloads in pkg/document, these are fully expanded: interpolation tokens
// substituted, data-driven fields pulled from the context, labels overridden.
type Content interface {
	renderContent()
}

// Text is expanded free text (header, text, terms, footer, tax-note,
// validity, invoice-number).
type Text struct {
	Text string `json:"text"`
}

// Columns is a resolved two-column layout row.
type Columns struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Table is the resolved line-items table. Placeholder is set when the rows
// came from the block's sample rows rather than the document.
type Table struct {
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
	Placeholder bool       `json:"placeholder,omitempty"`
}

// Lines is a resolved info section (company, customer, contact): a heading
// plus preformatted lines with empty fields already omitted.
type Lines struct {
	Heading string   `json:"heading,omitempty"`
	Lines   []string `json:"lines"`
}

// Field is one label/value pair inside a Fields section.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Fields is a resolved label/value section (document details, references,
// payment info). Note carries trailing free text such as a payment message.
type Fields struct {
	Title  string  `json:"title,omitempty"`
	Fields []Field `json:"fields"`
	Note   string  `json:"note,omitempty"`
}

// TotalRow is one line of the totals section.
type TotalRow struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Emphasis bool   `json:"emphasis,omitempty"`
}

// Totals is the resolved totals section.
type Totals struct {
	Rows []TotalRow `json:"rows"`
}

// Image is a resolved image or logo reference. The URL stays an opaque
// string; fetching is the presentation layer's concern.
type Image struct {
	URL   string `json:"url"`
	Alt   string `json:"alt,omitempty"`
	Width int    `json:"width,omitempty"`
}

// Signature is a resolved signature or acceptance area.
type Signature struct {
	Text     string `json:"text,omitempty"`
	ShowLine bool   `json:"showLine"`
}

// None marks blocks whose rendering is carried entirely by their style
// (divider, spacer, page-break).
type None struct{}

func (Text) renderContent()      {}
func (Columns) renderContent()   {}
func (Table) renderContent()     {}
func (Lines) renderContent()     {}
func (Fields) renderContent()    {}
func (Totals) renderContent()    {}
func (Image) renderContent()     {}
func (Signature) renderContent() {}
func (None) renderContent()      {}
