package calculation

import (
	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Summarize derives the headline figures of a projection
func Summarize(result *domain.ProjectionResult) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		Months:            result.Months(),
		TotalArrear:       result.TotalArrear,
		PeakMonthlyArrear: decimal.Zero,
		FinalGradePay:     result.Request.InitialGradePay,
		YearlyTotals:      YearlyTotals(result),
	}

	for i := range result.Records {
		r := &result.Records[i]
		if r.Arrear.GreaterThan(summary.PeakMonthlyArrear) {
			summary.PeakMonthlyArrear = r.Arrear
		}
		if r.Increment {
			summary.IncrementsApplied++
		}
		if r.Promoted {
			month := r.Month
			summary.PromotionMonth = &month
		}
	}

	if last, ok := result.Last(); ok {
		summary.FinalGradePay = last.GradePay
		summary.FinalStep = last.Step
		summary.FinalOldBasic = last.OldBasic
		summary.FinalNewBasic = last.NewBasic
	}

	return summary
}

// YearlyTotals groups monthly arrears by calendar year, in chronological order
func YearlyTotals(result *domain.ProjectionResult) []domain.YearTotal {
	var totals []domain.YearTotal
	for _, r := range result.Records {
		if n := len(totals); n == 0 || totals[n-1].Year != r.Month.Year {
			totals = append(totals, domain.YearTotal{Year: r.Month.Year, Arrear: decimal.Zero})
		}
		cur := &totals[len(totals)-1]
		cur.Months++
		cur.Arrear = cur.Arrear.Add(r.Arrear)
	}
	return totals
}
