// Package testsupport provides shared fixtures for package tests: a fully
// populated sample template and matching quote/invoice data contexts.
package testsupport

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/offertio/dokgen/pkg/docdata"
	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/style"
)

// SampleCompany returns the issuing company used across fixtures.
func SampleCompany() docdata.Company {
	return docdata.Company{
		Name:       "Granlund Bygg AB",
		OrgNumber:  "556123-4567",
		Address:    "Verkstadsgatan 12",
		PostalCode: "214 35",
		City:       "Malmö",
		Email:      "info@granlundbygg.se",
		Phone:      "040-12 34 56",
		Bankgiro:   "123-4567",
		VatNumber:  "SE556123456701",
	}
}

// SampleCustomer returns the receiving customer used across fixtures.
func SampleCustomer() docdata.Customer {
	return docdata.Customer{
		Name:       "Brf Solhöjden",
		OrgNumber:  "769612-3456",
		Address:    "Solgatan 3",
		PostalCode: "211 11",
		City:       "Malmö",
		Email:      "styrelsen@solhojden.se",
	}
}

// SampleLines returns two line items with round figures so expected totals
// are easy to read in assertions: 3 × 8000 + 1 × 1500 = 25500 excl. VAT.
func SampleLines() []docdata.LineInput {
	return []docdata.LineInput{
		{Description: "Takrenovering", Quantity: dec(3), Unit: "dag", UnitPrice: dec(8000)},
		{Description: "Materialkostnad", Quantity: dec(1), Unit: "st", UnitPrice: dec(1500)},
	}
}

// QuoteContext builds a populated quote data context.
func QuoteContext() docdata.Context {
	return docdata.Build(docdata.DocumentInput{
		Kind:         document.KindQuote,
		Number:       "2025-0042",
		IssueDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ValidUntil:   time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
		OurReference: "Pär Granlund",
		Lines:        SampleLines(),
	}, SampleCustomer(), SampleCompany())
}

// InvoiceContext builds a populated invoice data context.
func InvoiceContext() docdata.Context {
	return docdata.Build(docdata.DocumentInput{
		Kind:          document.KindInvoice,
		Number:        "1042",
		OCR:           "10420058",
		IssueDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
		OurReference:  "Pär Granlund",
		YourReference: "Eva Lind",
		Lines:         SampleLines(),
	}, SampleCustomer(), SampleCompany())
}

// InvoiceContextWithDeduction is InvoiceContext with a 3 000 kr ROT deduction
// applied, so payable differs from the grand total.
func InvoiceContextWithDeduction() docdata.Context {
	return docdata.Build(docdata.DocumentInput{
		Kind:      document.KindInvoice,
		Number:    "1043",
		IssueDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
		Lines:     SampleLines(),
		Deduction: dec(3000),
	}, SampleCustomer(), SampleCompany())
}

// QuoteTemplate builds a small but representative quote template: header row,
// details, line table, totals, and a footer with interpolation tokens.
func QuoteTemplate() document.Template {
	return document.Template{
		ID:             "tpl-quote",
		OrganisationID: "org-1",
		Name:           "Offertmall",
		Kind:           document.KindQuote,
		Version:        1,
		Blocks: []document.ContentBlock{
			{
				ID:      "b-header",
				Type:    document.TypeHeaderRow,
				Content: document.HeaderRowContent{Left: "{{company.name}}", Right: "Offert {{quote.number}}"},
				Style:   &style.Settings{FontSize: style.Ptr(style.SizeLG), FontWeight: style.Ptr(style.WeightSemibold)},
			},
			{
				ID:      "b-details",
				Type:    document.TypeDocumentDetails,
				Content: document.DocumentDetailsContent{Title: "Offert", ShowNumber: true, ShowDate: true, ShowDueDate: true},
			},
			{
				ID:      "b-table",
				Type:    document.TypeTable,
				Content: document.TableContent{
					Headers: document.TableHeaders{
						Description: "Beskrivning", Quantity: "Antal", Unit: "Enhet",
						UnitPrice: "À-pris", Total: "Summa",
					},
					ShowUnitColumn: true,
					PlaceholderRows: []document.PlaceholderRow{
						{Description: "Exempelartikel", Quantity: 1, Unit: "st", UnitPrice: 1000},
					},
				},
			},
			{
				ID:      "b-totals",
				Type:    document.TypeTotals,
				Content: document.TotalsContent{ShowSubtotal: true, ShowVat: true, ShowTotal: true},
			},
			{
				ID:      "b-footer",
				Type:    document.TypeFooter,
				Content: document.TextContent{Text: "{{company.name}} · Org.nr {{company.org_number}}"},
				Style:   &style.Settings{FontSize: style.Ptr(style.SizeXS), Align: style.Ptr(style.AlignCenter)},
			},
		},
	}
}

// InvoiceTemplate builds a representative invoice template including payment
// info and the F-skatt note.
func InvoiceTemplate() document.Template {
	return document.Template{
		ID:             "tpl-invoice",
		OrganisationID: "org-1",
		Name:           "Fakturamall",
		Kind:           document.KindInvoice,
		Version:        1,
		Blocks: []document.ContentBlock{
			{
				ID:      "b-details",
				Type:    document.TypeDocumentDetails,
				Content: document.DocumentDetailsContent{Title: "Faktura", ShowNumber: true, ShowDate: true, ShowDueDate: true},
			},
			{
				ID:      "b-customer",
				Type:    document.TypeCustomerInfo,
				Content: document.InfoContent{Heading: "Kund", ShowAddress: true, ShowOrgNr: true},
			},
			{
				ID:      "b-table",
				Type:    document.TypeTable,
				Content: document.TableContent{
					Headers: document.TableHeaders{
						Description: "Beskrivning", Quantity: "Antal", Unit: "Enhet",
						UnitPrice: "À-pris", Total: "Summa",
					},
					ShowUnitColumn: true,
				},
			},
			{
				ID:      "b-totals",
				Type:    document.TypeTotals,
				Content: document.TotalsContent{ShowSubtotal: true, ShowVat: true, ShowTotal: true},
			},
			{
				ID:      "b-payment",
				Type:    document.TypePaymentInfo,
				Content: document.PaymentInfoContent{ShowBankgiro: true, ShowOCR: true},
			},
			{
				ID:      "b-taxnote",
				Type:    document.TypeTaxNote,
				Content: document.TextContent{Text: "Godkänd för F-skatt"},
				Style:   &style.Settings{FontSize: style.Ptr(style.SizeXS)},
			},
		},
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
