package calculation

import (
	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/ropa/arrear-calculator/pkg/dateutil"
	pkgdec "github.com/ropa/arrear-calculator/pkg/decimal"
)

// projectionState is carried from one simulated month to the next
type projectionState struct {
	month    dateutil.YearMonth
	gradePay domain.GradePay
	step     int
	promoted bool
}

// walk runs the month-stepping state machine. The plan is already validated, so every
// matrix lookup here succeeds.
func (ae *ArrearEngine) walk(plan *projectionPlan) []domain.MonthlyRecord {
	state := projectionState{
		month:    ae.Rules.EpochStart,
		gradePay: plan.gradePay,
		step:     plan.step,
	}

	records := make([]domain.MonthlyRecord, 0, state.month.MonthsThrough(plan.end))

	for !state.month.After(plan.end) {
		promotedNow := false
		incremented := false

		if plan.promotion != nil && !state.promoted && state.month == *plan.promotion {
			ae.Logger.Debugf("%s: promotion GP %d step %d -> GP %d step 0",
				state.month.Label(), state.gradePay, state.step, ae.Rules.PromotionGradePay)
			state.gradePay = ae.Rules.PromotionGradePay
			state.step = 0
			state.promoted = true
			promotedNow = true
		}

		matrix := ae.Matrices[state.gradePay]

		if !promotedNow && IncrementDue(state.month, plan.incrementMonth, ae.Rules.IncrementFromYear) {
			next := matrix.Clamp(state.step + 1)
			if next == state.step {
				ae.Logger.Debugf("%s: GP %d already at top step %d, increment absorbed",
					state.month.Label(), state.gradePay, state.step)
			} else {
				incremented = true
			}
			state.step = next
		}

		records = append(records, ae.record(state, matrix[state.step], promotedNow, incremented))
		state.month = state.month.Next()
	}

	return records
}

func (ae *ArrearEngine) record(state projectionState, pay domain.PayStep, promoted, incremented bool) domain.MonthlyRecord {
	rate := LookupDA(ae.DAHistory, state.month.Time())

	oldTotal := pkgdec.NewMoneyFromDecimal(pay.OldBasic).WithDA(rate).RoundRupee()
	newTotal := pkgdec.NewMoneyFromDecimal(pay.NewBasic).WithDA(rate).RoundRupee()

	return domain.MonthlyRecord{
		Month:     state.month,
		Label:     state.month.Label(),
		GradePay:  state.gradePay,
		Step:      state.step,
		OldBasic:  pay.OldBasic,
		NewBasic:  pay.NewBasic,
		DARate:    rate,
		DAPercent: DAPercent(rate),
		OldTotal:  oldTotal.Decimal,
		NewTotal:  newTotal.Decimal,
		Arrear:    newTotal.Sub(oldTotal).Decimal,
		Promoted:  promoted,
		Increment: incremented,
	}
}
