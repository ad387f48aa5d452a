package calculation

import (
	"time"

	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// LookupDA returns the DA rate in force on a date: the latest entry effective on or
// before it, or the earliest entry for dates preceding the whole history.
func LookupDA(history domain.DAHistory, at time.Time) decimal.Decimal {
	if len(history) == 0 {
		return decimal.Zero
	}
	rate := history[0].Rate
	for _, entry := range history {
		if !entry.EffectiveDate.After(at) {
			rate = entry.Rate
		}
	}
	return rate
}

// DAPercent converts a rate to the whole percentage shown on the statement
func DAPercent(rate decimal.Decimal) int64 {
	return rate.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
