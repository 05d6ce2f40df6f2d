package blocks

import (
	"sync"

	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/style"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in catalogue. The returned registry is shared;
// call Clone before registering custom types.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
		registerCatalogue(defaultRegistry)
	})
	return defaultRegistry
}

var bothKinds = []document.Kind{document.KindQuote, document.KindInvoice}

func registerCatalogue(r *Registry) {
	// Content blocks.
	r.MustRegister(Definition{
		Type:     document.TypeHeader,
		Category: CategoryContent,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.TextContent{Text: "{{company.name}}"}
		},
		DefaultStyle: style.Settings{
			FontSize:   style.Ptr(style.Size2XL),
			FontWeight: style.Ptr(style.WeightBold),
			Align:      style.Ptr(style.AlignCenter),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeSubheader,
		Category: CategoryContent,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.TextContent{}
		},
		DefaultStyle: style.Settings{
			FontSize:   style.Ptr(style.SizeXL),
			FontWeight: style.Ptr(style.WeightSemibold),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeText,
		Category: CategoryContent,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.TextContent{}
		},
		DefaultStyle: style.Settings{
			Color: style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeTable,
		Category: CategoryContent,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.TableContent{
				Headers: document.TableHeaders{
					Description: "Beskrivning",
					Quantity:    "Antal",
					Unit:        "Enhet",
					UnitPrice:   "À-pris",
					Total:       "Summa",
				},
				ShowUnitColumn: true,
				PlaceholderRows: []document.PlaceholderRow{
					{Description: "Exempelartikel", Quantity: 1, Unit: "st", UnitPrice: 1000},
				},
			}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeSM),
			Color:    style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeImage,
		Category: CategoryContent,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.ImageContent{}
		},
		DefaultStyle: style.Settings{
			ImageAlign: style.Ptr(style.AlignCenter),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeLogo,
		Category: CategoryContent,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.EmptyContent{}
		},
		DefaultStyle: style.Settings{
			LogoMaxHeight: style.Ptr(64),
		},
	})

	// Section blocks.
	r.MustRegister(Definition{
		Type:     document.TypeCompanyInfo,
		Category: CategorySection,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.InfoContent{ShowAddress: true, ShowOrgNr: true}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeSM),
			Color:    style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeDocumentDetails,
		Category: CategorySection,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.DocumentDetailsContent{ShowNumber: true, ShowDate: true, ShowDueDate: true}
		},
		DefaultStyle: style.Settings{
			FontSize:   style.Ptr(style.SizeXL),
			FontWeight: style.Ptr(style.WeightBold),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeCustomerInfo,
		Category: CategorySection,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.InfoContent{Heading: "Kund", ShowAddress: true}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeSM),
			Color:    style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeContactInfo,
		Category: CategorySection,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.InfoContent{Heading: "Kontakt", ShowEmail: true, ShowPhone: true}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeSM),
			Color:    style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeReferenceInfo,
		Category: CategorySection,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.ReferenceContent{OurLabel: "Vår referens", YourLabel: "Er referens"}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeSM),
			Color:    style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeTotals,
		Category: CategorySection,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.TotalsContent{ShowSubtotal: true, ShowVat: true, ShowTotal: true, ShowDeduction: true}
		},
		DefaultStyle: style.Settings{
			Align: style.Ptr(style.AlignRight),
			Color: style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeTerms,
		Category: CategorySection,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.TextContent{Text: "Betalningsvillkor: 30 dagar netto. Dröjsmålsränta enligt räntelagen."}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeXS),
			Color:    style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeSignature,
		Category: CategorySection,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.EmptyContent{}
		},
		DefaultStyle: style.Settings{
			Margin: &style.Edges{Top: 48},
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeFooter,
		Category: CategorySection,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.TextContent{Text: "{{company.name}} · Org.nr {{company.org_number}}"}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeXS),
			Align:    style.Ptr(style.AlignCenter),
			Color:    style.Ptr("#6b7280"),
		},
	})

	// Layout blocks.
	r.MustRegister(Definition{
		Type:     document.TypeDivider,
		Category: CategoryLayout,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.EmptyContent{}
		},
		DefaultStyle: style.Settings{
			BorderWidth: style.Ptr(1),
			BorderColor: style.Ptr("#e5e7eb"),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeSpacer,
		Category: CategoryLayout,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.EmptyContent{}
		},
		DefaultStyle: style.Settings{
			SpacerHeight: style.Ptr(24),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeHeaderRow,
		Category: CategoryLayout,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.HeaderRowContent{Left: "{{company.name}}", Right: "{{document.number}}"}
		},
		DefaultStyle: style.Settings{
			FontWeight: style.Ptr(style.WeightMedium),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypePageBreak,
		Category: CategoryLayout,
		Kinds:    bothKinds,
		DefaultContent: func() document.Content {
			return document.EmptyContent{}
		},
	})

	// Invoice-only blocks.
	r.MustRegister(Definition{
		Type:     document.TypePaymentInfo,
		Category: CategoryKind,
		Kinds:    []document.Kind{document.KindInvoice},
		DefaultContent: func() document.Content {
			return document.PaymentInfoContent{
				ShowBankgiro: true,
				ShowOCR:      true,
				Message:      "Vänligen ange OCR-nummer vid betalning.",
			}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeSM),
			Color:    style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeInvoiceNumber,
		Category: CategoryKind,
		Kinds:    []document.Kind{document.KindInvoice},
		DefaultContent: func() document.Content {
			return document.EmptyContent{}
		},
		DefaultStyle: style.Settings{
			FontSize:   style.Ptr(style.SizeLG),
			FontWeight: style.Ptr(style.WeightSemibold),
			Align:      style.Ptr(style.AlignRight),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeTaxNote,
		Category: CategoryKind,
		Kinds:    []document.Kind{document.KindInvoice},
		DefaultContent: func() document.Content {
			return document.TextContent{Text: "Godkänd för F-skatt"}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeXS),
			Color:    style.Ptr("#6b7280"),
		},
	})

	// Quote-only blocks.
	r.MustRegister(Definition{
		Type:     document.TypeValidity,
		Category: CategoryKind,
		Kinds:    []document.Kind{document.KindQuote},
		DefaultContent: func() document.Content {
			return document.TextContent{Text: "Offerten är giltig till {{quote.valid_until}}."}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeSM),
			Color:    style.Ptr(style.FallbackColor),
		},
	})
	r.MustRegister(Definition{
		Type:     document.TypeAcceptance,
		Category: CategoryKind,
		Kinds:    []document.Kind{document.KindQuote},
		DefaultContent: func() document.Content {
			return document.AcceptanceContent{
				Text:              "Härmed godkänns offerten och dess villkor.",
				ShowSignatureLine: true,
			}
		},
		DefaultStyle: style.Settings{
			FontSize: style.Ptr(style.SizeSM),
			Margin:   &style.Edges{Top: 32},
		},
	})
}
