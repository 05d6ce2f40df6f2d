// Command dokgen-cli renders a stored or standard template to HTML or plain
// text. Run with -interactive to pick the template and renderer from prompts.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/shopspring/decimal"

	"github.com/offertio/dokgen/pkg/docdata"
	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/orchestrator"
	"github.com/offertio/dokgen/pkg/store"
)

func main() {
	templatesDir := flag.String("templates", "", "template store directory (standard templates if empty)")
	org := flag.String("org", "", "organisation id owning the template")
	templateID := flag.String("template", "", "template id to render (standard template for -kind if empty)")
	kind := flag.String("kind", "quote", "document kind when no template id is given (quote or invoice)")
	renderer := flag.String("renderer", "html", "output renderer (html or text)")
	dataPath := flag.String("data", "", "JSON document data file (placeholder preview if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	seed := flag.Bool("seed", false, "install the standard templates for -org and exit")
	interactive := flag.Bool("interactive", false, "pick template and renderer from prompts")
	flag.Parse()

	ctx := context.Background()

	var st store.Store
	if *templatesDir != "" {
		fsStore, err := store.NewFS(*templatesDir)
		if err != nil {
			log.Fatalf("open template store: %v", err)
		}
		st = fsStore
	}

	if *seed {
		if st == nil {
			log.Fatal("seed requires -templates")
		}
		installed, err := store.Seed(ctx, st, *org)
		if err != nil {
			log.Fatalf("seed templates: %v", err)
		}
		for _, tpl := range installed {
			fmt.Printf("installed %s (%s)\n", tpl.Name, tpl.ID)
		}
		return
	}

	template, err := pickTemplate(ctx, st, *org, *templateID, *kind, *interactive)
	if err != nil {
		log.Fatalf("select template: %v", err)
	}

	if *interactive {
		if err := survey.AskOne(&survey.Select{
			Message: "Renderer:",
			Options: []string{"html", "text"},
			Default: *renderer,
		}, renderer); err != nil {
			log.Fatalf("select renderer: %v", err)
		}
	}

	data, err := loadData(*dataPath)
	if err != nil {
		log.Fatalf("load document data: %v", err)
	}

	gen := orchestrator.New(orchestrator.WithStore(st))
	rendered, err := gen.Generate(ctx, orchestrator.Request{
		Template: &template,
		Data:     data,
		Renderer: *renderer,
	})
	if err != nil {
		log.Fatalf("render document: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func pickTemplate(ctx context.Context, st store.Store, org, templateID, kind string, interactive bool) (document.Template, error) {
	if templateID != "" {
		if st == nil {
			return document.Template{}, fmt.Errorf("template id given but no -templates directory")
		}
		return st.Get(ctx, org, templateID)
	}

	var candidates []document.Template
	if st != nil && org != "" {
		listed, err := st.List(ctx, org)
		if err != nil {
			return document.Template{}, err
		}
		candidates = listed
	}
	if len(candidates) == 0 {
		standards, err := store.StandardTemplates()
		if err != nil {
			return document.Template{}, err
		}
		candidates = standards
	}

	if !interactive {
		for _, tpl := range candidates {
			if tpl.Kind == document.Kind(kind) {
				return tpl, nil
			}
		}
		return document.Template{}, fmt.Errorf("no template for kind %q", kind)
	}

	names := make([]string, len(candidates))
	for i, tpl := range candidates {
		names[i] = fmt.Sprintf("%s (%s)", tpl.Name, tpl.Kind)
	}
	var picked string
	if err := survey.AskOne(&survey.Select{Message: "Template:", Options: names}, &picked); err != nil {
		return document.Template{}, err
	}
	for i, name := range names {
		if name == picked {
			return candidates[i], nil
		}
	}
	return document.Template{}, fmt.Errorf("template %q not found", picked)
}

// cliData is the JSON shape of the -data file: the document plus its customer
// and company records, with money fields as plain numbers.
type cliData struct {
	Kind          string    `json:"kind"`
	Number        string    `json:"number"`
	OCR           string    `json:"ocr"`
	IssueDate     time.Time `json:"issueDate"`
	DueDate       time.Time `json:"dueDate"`
	ValidUntil    time.Time `json:"validUntil"`
	OurReference  string    `json:"ourReference"`
	YourReference string    `json:"yourReference"`
	VatRate       *float64  `json:"vatRate"`
	Deduction     float64   `json:"deduction"`

	Lines []struct {
		Description string  `json:"description"`
		Quantity    float64 `json:"quantity"`
		Unit        string  `json:"unit"`
		UnitPrice   float64 `json:"unitPrice"`
	} `json:"lines"`

	Customer docdata.Customer `json:"customer"`
	Company  docdata.Company  `json:"company"`
}

func loadData(path string) (docdata.Context, error) {
	if path == "" {
		return docdata.Context{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return docdata.Context{}, err
	}
	var in cliData
	if err := json.Unmarshal(raw, &in); err != nil {
		return docdata.Context{}, fmt.Errorf("parse %s: %w", path, err)
	}

	input := docdata.DocumentInput{
		Kind:          document.Kind(in.Kind),
		Number:        in.Number,
		OCR:           in.OCR,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		ValidUntil:    in.ValidUntil,
		OurReference:  in.OurReference,
		YourReference: in.YourReference,
		Deduction:     decimal.NewFromFloat(in.Deduction),
	}
	if in.VatRate != nil {
		rate := decimal.NewFromFloat(*in.VatRate)
		input.VatRate = &rate
	}
	for _, line := range in.Lines {
		input.Lines = append(input.Lines, docdata.LineInput{
			Description: line.Description,
			Quantity:    decimal.NewFromFloat(line.Quantity),
			Unit:        line.Unit,
			UnitPrice:   decimal.NewFromFloat(line.UnitPrice),
		})
	}

	return docdata.Build(input, in.Customer, in.Company), nil
}
