package output

import (
	json "github.com/goccy/go-json"
	"github.com/ropa/arrear-calculator/internal/domain"
)

// JSONFormatter serializes the arrear report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ArrearReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
