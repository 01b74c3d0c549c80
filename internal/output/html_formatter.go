package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"strings"

	"github.com/lifeplan/assetsim/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML page with the summary and the yearly table.
type HTMLFormatter struct {
	Numbers NumberFormat
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/projection.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("projection").Funcs(template.FuncMap{
	// rebound per render to the formatter's locale
	"amount": func(decimal.Decimal) string { return "" },
	"signed": func(decimal.Decimal) string { return "" },
	"events": func(labels []string) string { return strings.Join(labels, ", ") },
	"sign": func(d decimal.Decimal) string {
		if d.IsNegative() {
			return "negative"
		}
		return "positive"
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(projection *domain.Projection) ([]byte, error) {
	tmpl, err := htmlTemplate.Clone()
	if err != nil {
		return nil, err
	}
	tmpl.Funcs(template.FuncMap{
		"amount": h.Numbers.Amount,
		"signed": h.Numbers.Signed,
	})

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, projection); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
