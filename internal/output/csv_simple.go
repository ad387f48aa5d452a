package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/ropa/arrear-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ArrearReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Months", "TotalArrear", "PeakMonthlyArrear", "IncrementsApplied", "PromotionMonth", "FinalGradePay", "FinalLevel", "FinalOldBasic", "FinalNewBasic"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		s := sc.Summary
		row := []string{
			sc.Name,
			strconv.Itoa(s.Months),
			s.TotalArrear.StringFixed(0),
			s.PeakMonthlyArrear.StringFixed(0),
			strconv.Itoa(s.IncrementsApplied),
			promotionLabel(s),
			strconv.Itoa(int(s.FinalGradePay)),
			strconv.Itoa(s.FinalStep + 1),
			s.FinalOldBasic.StringFixed(0),
			s.FinalNewBasic.StringFixed(0),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
