package output

import (
	"strconv"

	"github.com/ropa/arrear-calculator/internal/domain"
	pkgdec "github.com/ropa/arrear-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// RecordColumns is the column order shared by the tabular exports.
var RecordColumns = []string{
	"Month",
	"Grade Pay",
	"Old Basic",
	"New Basic",
	"DA %",
	"Old Basic + DA",
	"New Basic + DA",
	"Monthly Arrear",
}

// FormatRupees formats a decimal as a rupee amount with western thousands grouping.
func FormatRupees(amount decimal.Decimal) string { return pkgdec.NewMoneyFromDecimal(amount).Format() }

// FormatGrouped formats a decimal with thousands separators and no currency sign.
func FormatGrouped(amount decimal.Decimal) string {
	return pkgdec.NewMoneyFromDecimal(amount).Grouped()
}

// FormatPercent renders a whole DA percentage.
func FormatPercent(pct int64) string { return strconv.FormatInt(pct, 10) + "%" }

// recordCells renders a monthly record as plain cells in RecordColumns order.
func recordCells(r domain.MonthlyRecord) []string {
	return []string{
		r.Label,
		strconv.Itoa(int(r.GradePay)),
		r.OldBasic.StringFixed(0),
		r.NewBasic.StringFixed(0),
		strconv.FormatInt(r.DAPercent, 10),
		r.OldTotal.StringFixed(0),
		r.NewTotal.StringFixed(0),
		r.Arrear.StringFixed(0),
	}
}

// promotionLabel returns the promotion month label or "-".
func promotionLabel(s domain.ProjectionSummary) string {
	if s.PromotionMonth == nil {
		return "-"
	}
	return s.PromotionMonth.Label()
}
