package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ropa/arrear-calculator/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))
	promoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD54A"))
	totalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)

	// column widths follow RecordColumns
	consoleWidths = []int{10, 10, 10, 10, 6, 16, 16, 16}
)

// ConsoleFormatter renders each scenario as a styled monthly table followed by totals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ArrearReport) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("ROPA 2020 SALARY ARREAR STATEMENT"))
	fmt.Fprintln(&b, strings.Repeat("=", 40))

	for _, sc := range report.Scenarios {
		fmt.Fprintln(&b)
		writeConsoleScenario(&b, sc)
	}

	if len(report.Scenarios) > 1 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, totalStyle.Render("Grand Total: "+FormatRupees(report.GrandTotal())))
	}
	return []byte(b.String()), nil
}

func writeConsoleScenario(b *strings.Builder, sc domain.ScenarioProjection) {
	fmt.Fprintln(b, titleStyle.Render(sc.Name))
	if sc.Result == nil {
		return
	}
	req := sc.Result.Request
	fmt.Fprintf(b, "Grade Pay %d, initial basic %d, increment month %d, arrear up to %s\n",
		req.InitialGradePay, req.InitialBasic, req.IncrementMonth, req.ArrearUpto)
	if req.PromotionMonth != "" {
		fmt.Fprintf(b, "Promotion: %s\n", promotionLabel(sc.Summary))
	}

	if len(sc.Result.Records) == 0 {
		fmt.Fprintln(b, "No arrear months in range.")
	} else {
		fmt.Fprintln(b, consoleRow(RecordColumns, headerStyle))
		for _, r := range sc.Result.Records {
			style := cellStyle
			if r.Promoted {
				style = promoStyle
			}
			fmt.Fprintln(b, consoleRow(consoleCells(r), style))
		}
	}

	fmt.Fprintln(b, totalStyle.Render("Total Arrear: "+FormatRupees(sc.Result.TotalArrear)))
	for _, yt := range sc.Summary.YearlyTotals {
		fmt.Fprintf(b, "  %d (%2d months): %s\n", yt.Year, yt.Months, FormatRupees(yt.Arrear))
	}
}

func consoleCells(r domain.MonthlyRecord) []string {
	return []string{
		r.Label,
		strconv.Itoa(int(r.GradePay)),
		FormatGrouped(r.OldBasic),
		FormatGrouped(r.NewBasic),
		FormatPercent(r.DAPercent),
		FormatGrouped(r.OldTotal),
		FormatGrouped(r.NewTotal),
		FormatGrouped(r.Arrear),
	}
}

func consoleRow(cells []string, style lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		align := lipgloss.Right
		if i == 0 {
			align = lipgloss.Left
		}
		parts[i] = style.Width(consoleWidths[i]).Align(align).Render(cell)
	}
	return strings.Join(parts, " ")
}
