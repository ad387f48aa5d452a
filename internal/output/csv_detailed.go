package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ropa/arrear-calculator/internal/domain"
)

// CSVDetailedExporter writes every monthly record of every scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.ArrearReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append([]string{"Scenario"}, RecordColumns...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		if sc.Result == nil {
			continue
		}
		for _, r := range sc.Result.Records {
			if err := w.Write(append([]string{sc.Name}, recordCells(r)...)); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
