package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/ropa/arrear-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML arrear statement.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"rupees":    FormatRupees,
	"grouped":   FormatGrouped,
	"pct":       FormatPercent,
	"promotion": promotionLabel,
	"level":     func(step int) int { return step + 1 },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.ArrearReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ArrearReport
		Columns []string
	}{report, RecordColumns}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
