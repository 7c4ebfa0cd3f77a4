package invoice

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/kunallagu/shopify-gst-invoice-app-2/config"
	"github.com/kunallagu/shopify-gst-invoice-app-2/internal/models"
)

//go:embed templates/invoice.html
var templateFS embed.FS

// Renderer turns an invoice summary into the printable HTML document.
type Renderer struct {
	tmpl    *template.Template
	company config.CompanyConfig
}

func NewRenderer(company config.CompanyConfig) (*Renderer, error) {
	funcs := template.FuncMap{
		"money": FormatAmount,
		"lines": func(s string) []string {
			return strings.Split(strings.TrimRight(s, "\n"), "\n")
		},
	}
	tmpl, err := template.New("invoice.html").Funcs(funcs).ParseFS(templateFS, "templates/invoice.html")
	if err != nil {
		return nil, fmt.Errorf("parse invoice template: %w", err)
	}
	return &Renderer{tmpl: tmpl, company: company}, nil
}

type templateData struct {
	Company config.CompanyConfig
	Summary *models.InvoiceSummary
}

func (r *Renderer) Render(summary *models.InvoiceSummary) (string, error) {
	var b strings.Builder
	if err := r.tmpl.Execute(&b, templateData{Company: r.company, Summary: summary}); err != nil {
		return "", fmt.Errorf("render invoice %s: %w", summary.InvoiceNumber, err)
	}
	return b.String(), nil
}
