package render

import (
	"go.uber.org/zap"

	"github.com/offertio/dokgen/pkg/blocks"
	"github.com/offertio/dokgen/pkg/docdata"
	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/interp"
	"github.com/offertio/dokgen/pkg/style"
)

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithRegistry injects a block type registry. Defaults to the built-in
// catalogue.
func WithRegistry(reg *blocks.Registry) ComposerOption {
	return func(c *Composer) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithLogger injects a logger. Defaults to a nop logger; the composer only
// logs at debug level, for skipped blocks.
func WithLogger(logger *zap.Logger) ComposerOption {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Composer is the pure template-to-nodes transform. Identical inputs always
// produce an identical node list; composing never mutates the template or
// the context.
type Composer struct {
	registry *blocks.Registry
	logger   *zap.Logger
}

// NewComposer constructs a Composer with the built-in catalogue and a nop
// logger unless options say otherwise.
func NewComposer(options ...ComposerOption) *Composer {
	c := &Composer{
		registry: blocks.Default(),
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Compose walks the template's blocks in order and produces one node per
// renderable block. Blocks whose type the registry does not know contribute
// no node but stay in the template untouched, so round-tripping a template
// written by a newer catalogue is lossless.
func (c *Composer) Compose(tpl document.Template, data docdata.Context) []Node {
	nodes := make([]Node, 0, len(tpl.Blocks))
	for _, block := range tpl.Blocks {
		def, known := c.registry.Definition(block.Type)
		if !known {
			c.logger.Debug("skipping unknown block type",
				zap.String("template", tpl.ID),
				zap.String("block", block.ID),
				zap.String("type", string(block.Type)))
			continue
		}
		if _, raw := block.Content.(document.RawContent); raw {
			c.logger.Debug("skipping block with undecoded content",
				zap.String("template", tpl.ID),
				zap.String("block", block.ID),
				zap.String("type", string(block.Type)))
			continue
		}
		if block.Type == document.TypeSignature && !tpl.Design.ShowSignature {
			continue
		}

		content := resolveContent(block, tpl, data)
		if content == nil {
			c.logger.Debug("skipping block with unexpected content shape",
				zap.String("template", tpl.ID),
				zap.String("block", block.ID),
				zap.String("type", string(block.Type)))
			continue
		}

		nodes = append(nodes, Node{
			BlockID: block.ID,
			Type:    block.Type,
			Style:   style.Resolve(block.Style, def.DefaultStyle, tpl.Design.StyleDefaults()),
			Content: content,
		})
	}
	return nodes
}

// Compose runs a default Composer, for callers that need no configuration.
func Compose(tpl document.Template, data docdata.Context) []Node {
	return NewComposer().Compose(tpl, data)
}

// resolveContent expands a block's payload against the data context. It
// dispatches on the payload shape; the block type only matters where two
// types share a shape but read different context fields. A nil return skips
// the block.
func resolveContent(block document.ContentBlock, tpl document.Template, data docdata.Context) Content {
	design := tpl.Design

	switch payload := block.Content.(type) {
	case document.TextContent:
		text := payload.Text
		switch block.Type {
		case document.TypeFooter:
			text = design.TextOverride(document.LabelFooterText, text)
		case document.TypeTerms:
			text = design.TextOverride(document.LabelPaymentTerms, text)
		}
		return Text{Text: interp.Expand(text, data)}

	case document.HeaderRowContent:
		return Columns{
			Left:  interp.Expand(payload.Left, data),
			Right: interp.Expand(payload.Right, data),
		}

	case document.TableContent:
		return resolveTable(payload, design, data)

	case document.TotalsContent:
		return resolveTotals(payload, data)

	case document.ImageContent:
		return Image{URL: payload.URL, Alt: payload.Alt, Width: payload.Width}

	case document.InfoContent:
		return resolveInfo(block.Type, payload, data)

	case document.DocumentDetailsContent:
		return resolveDetails(payload, data)

	case document.ReferenceContent:
		return resolveReferences(payload, data)

	case document.PaymentInfoContent:
		return resolvePayment(payload, data)

	case document.AcceptanceContent:
		text := design.TextOverride(document.LabelAcceptanceText, payload.Text)
		return Signature{
			Text:     interp.Expand(text, data),
			ShowLine: payload.ShowSignatureLine,
		}

	case document.EmptyContent:
		switch block.Type {
		case document.TypeLogo:
			return Image{URL: data.Company.LogoURL, Alt: data.Company.Name}
		case document.TypeInvoiceNumber:
			return Text{Text: invoiceNumberText(data)}
		case document.TypeSignature:
			return Signature{
				Text:     design.TextOverride(document.LabelSignatureHint, "Underskrift"),
				ShowLine: true,
			}
		}
		return None{}
	}

	return nil
}

func invoiceNumberText(data docdata.Context) string {
	if data.Document.Number == "" {
		return ""
	}
	return "Fakturanr " + data.Document.Number
}

func resolveTable(payload document.TableContent, design document.DesignOptions, data docdata.Context) Content {
	headers := []string{
		design.TextOverride(document.LabelTableDescription, payload.Headers.Description),
		design.TextOverride(document.LabelTableQuantity, payload.Headers.Quantity),
	}
	if payload.ShowUnitColumn {
		headers = append(headers, design.TextOverride(document.LabelTableUnit, payload.Headers.Unit))
	}
	headers = append(headers,
		design.TextOverride(document.LabelTableUnitPrice, payload.Headers.UnitPrice),
		design.TextOverride(document.LabelTableTotal, payload.Headers.Total),
	)

	table := Table{Headers: headers}

	if data.HasLines() {
		for _, line := range data.Lines {
			row := []string{line.Description, docdata.FormatQuantity(line.Quantity)}
			if payload.ShowUnitColumn {
				row = append(row, line.Unit)
			}
			row = append(row, docdata.FormatAmount(line.UnitPrice), docdata.FormatAmount(line.Total))
			table.Rows = append(table.Rows, row)
		}
		return table
	}

	table.Placeholder = true
	for _, sample := range payload.PlaceholderRows {
		qty := decimalFromFloat(sample.Quantity)
		price := decimalFromFloat(sample.UnitPrice)
		row := []string{sample.Description, docdata.FormatQuantity(qty)}
		if payload.ShowUnitColumn {
			row = append(row, sample.Unit)
		}
		row = append(row, docdata.FormatAmount(price), docdata.FormatAmount(qty.Mul(price)))
		table.Rows = append(table.Rows, row)
	}
	return table
}

func resolveTotals(payload document.TotalsContent, data docdata.Context) Content {
	totals := Totals{}
	if payload.ShowSubtotal {
		totals.Rows = append(totals.Rows, TotalRow{Label: "Delsumma", Value: docdata.FormatSEK(data.Totals.Subtotal)})
	}
	if payload.ShowVat {
		totals.Rows = append(totals.Rows, TotalRow{
			Label: "Moms (" + vatPercent(data) + " %)",
			Value: docdata.FormatSEK(data.Totals.VatAmount),
		})
	}
	if payload.ShowTotal {
		totals.Rows = append(totals.Rows, TotalRow{Label: "Summa", Value: docdata.FormatSEK(data.Totals.Total)})
	}
	if payload.ShowDeduction && !data.Totals.Deduction.IsZero() {
		totals.Rows = append(totals.Rows, TotalRow{Label: "Avdrag", Value: "-" + docdata.FormatSEK(data.Totals.Deduction)})
		totals.Rows = append(totals.Rows, TotalRow{Label: "Att betala", Value: docdata.FormatSEK(data.Totals.Payable), Emphasis: true})
		return totals
	}
	if payload.ShowTotal {
		// Without a deduction the grand total is the payable amount;
		// emphasize it instead of repeating the figure.
		totals.Rows[len(totals.Rows)-1].Emphasis = true
	}
	return totals
}

func resolveInfo(tag document.Type, payload document.InfoContent, data docdata.Context) Content {
	var name, address, postal, city, email, phone, orgNr string

	switch tag {
	case document.TypeCustomerInfo:
		cust := data.Customer
		name, address, postal, city = cust.Name, cust.Address, cust.PostalCode, cust.City
		email, phone, orgNr = cust.Email, cust.Phone, cust.OrgNumber
	default:
		comp := data.Company
		name, address, postal, city = comp.Name, comp.Address, comp.PostalCode, comp.City
		email, phone, orgNr = comp.Email, comp.Phone, comp.OrgNumber
	}

	out := Lines{Heading: payload.Heading}
	appendLine(&out, name)
	if payload.ShowAddress {
		appendLine(&out, address)
		appendLine(&out, joinNonEmpty(postal, city))
	}
	if payload.ShowEmail {
		appendLine(&out, email)
	}
	if payload.ShowPhone {
		appendLine(&out, phone)
	}
	if payload.ShowOrgNr && orgNr != "" {
		appendLine(&out, "Org.nr "+orgNr)
	}
	return out
}

func resolveDetails(payload document.DocumentDetailsContent, data docdata.Context) Content {
	title := payload.Title
	if title == "" {
		title = "Faktura"
		if data.Kind == document.KindQuote {
			title = "Offert"
		}
	}

	out := Fields{Title: title}
	if payload.ShowNumber && data.Document.Number != "" {
		label := "Fakturanummer"
		if data.Kind == document.KindQuote {
			label = "Offertnummer"
		}
		out.Fields = append(out.Fields, Field{Label: label, Value: data.Document.Number})
	}
	if payload.ShowDate {
		if v := docdata.FormatDate(data.Document.IssueDate); v != "" {
			out.Fields = append(out.Fields, Field{Label: "Datum", Value: v})
		}
	}
	if payload.ShowDueDate {
		if data.Kind == document.KindQuote {
			if v := docdata.FormatDate(data.Document.ValidUntil); v != "" {
				out.Fields = append(out.Fields, Field{Label: "Giltig till", Value: v})
			}
		} else if v := docdata.FormatDate(data.Document.DueDate); v != "" {
			out.Fields = append(out.Fields, Field{Label: "Förfallodatum", Value: v})
		}
	}
	return out
}

func resolveReferences(payload document.ReferenceContent, data docdata.Context) Content {
	out := Fields{}
	if data.Document.OurReference != "" {
		out.Fields = append(out.Fields, Field{Label: payload.OurLabel, Value: data.Document.OurReference})
	}
	if data.Document.YourReference != "" {
		out.Fields = append(out.Fields, Field{Label: payload.YourLabel, Value: data.Document.YourReference})
	}
	return out
}

func resolvePayment(payload document.PaymentInfoContent, data docdata.Context) Content {
	out := Fields{Title: "Betalningsinformation"}
	if payload.ShowBankgiro && data.Company.Bankgiro != "" {
		out.Fields = append(out.Fields, Field{Label: "Bankgiro", Value: data.Company.Bankgiro})
	}
	if payload.ShowPlusgiro && data.Company.Plusgiro != "" {
		out.Fields = append(out.Fields, Field{Label: "Plusgiro", Value: data.Company.Plusgiro})
	}
	if payload.ShowOCR && data.Document.OCR != "" {
		out.Fields = append(out.Fields, Field{Label: "OCR", Value: data.Document.OCR})
	}
	out.Note = interp.Expand(payload.Message, data)
	return out
}

func appendLine(l *Lines, line string) {
	if line != "" {
		l.Lines = append(l.Lines, line)
	}
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
