package calculation

import "github.com/ropa/arrear-calculator/pkg/dateutil"

// IncrementDue reports whether the annual increment falls in month: the calendar month
// matches incrementMonth (1-12) and the year is on or after fromYear.
func IncrementDue(month dateutil.YearMonth, incrementMonth int, fromYear int) bool {
	return int(month.Month) == incrementMonth && month.Year >= fromYear
}
