package output

import (
	"fmt"
	"strings"

	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SingleSheetName is used when the report holds exactly one scenario.
const SingleSheetName = "Arrear Report"

const maxSheetNameLen = 31

// XLSXFormatter writes one worksheet per scenario with a closing total row.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(report *domain.ArrearReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DCE6F1"}},
	})
	if err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	names := SheetNames(report)
	for i, sc := range report.Scenarios {
		sheet := names[i]
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		if err := writeScenarioSheet(f, sheet, sc, headerStyle, totalStyle); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeScenarioSheet(f *excelize.File, sheet string, sc domain.ScenarioProjection, headerStyle, totalStyle int) error {
	header := make([]interface{}, len(RecordColumns))
	for i, c := range RecordColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "H1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "H", 16); err != nil {
		return err
	}

	row := 2
	if sc.Result != nil {
		for _, r := range sc.Result.Records {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []interface{}{
				r.Label,
				int(r.GradePay),
				r.OldBasic.IntPart(),
				r.NewBasic.IntPart(),
				r.DAPercent,
				r.OldTotal.IntPart(),
				r.NewTotal.IntPart(),
				r.Arrear.IntPart(),
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}

	totalLabel, _ := excelize.CoordinatesToCellName(1, row)
	totalValue, _ := excelize.CoordinatesToCellName(len(RecordColumns), row)
	if err := f.SetCellValue(sheet, totalLabel, "Total"); err != nil {
		return err
	}
	total := int64(0)
	if sc.Result != nil {
		total = sc.Result.TotalArrear.IntPart()
	}
	if err := f.SetCellValue(sheet, totalValue, total); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, totalLabel, totalValue, totalStyle)
}

// SheetNames derives a valid, unique worksheet name per scenario.
func SheetNames(report *domain.ArrearReport) []string {
	if len(report.Scenarios) == 1 {
		return []string{SingleSheetName}
	}
	names := make([]string, len(report.Scenarios))
	used := make(map[string]bool, len(report.Scenarios))
	for i, sc := range report.Scenarios {
		base := sanitizeSheetName(sc.Name)
		if base == "" {
			base = fmt.Sprintf("Scenario %d", i+1)
		}
		name := base
		for n := 2; used[strings.ToLower(name)]; n++ {
			suffix := fmt.Sprintf(" (%d)", n)
			name = truncateRunes(base, maxSheetNameLen-len(suffix)) + suffix
		}
		used[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

func sanitizeSheetName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	cleaned = strings.Trim(cleaned, "'")
	return truncateRunes(cleaned, maxSheetNameLen)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
