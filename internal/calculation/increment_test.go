package calculation

import (
	"testing"
	"time"

	"github.com/ropa/arrear-calculator/pkg/dateutil"
	"github.com/stretchr/testify/assert"
)

func TestIncrementDue(t *testing.T) {
	tests := []struct {
		name           string
		month          dateutil.YearMonth
		incrementMonth int
		expected       bool
	}{
		{"Matching month in effective year", dateutil.YearMonth{Year: 2020, Month: time.July}, 7, true},
		{"Matching month in later year", dateutil.YearMonth{Year: 2025, Month: time.January}, 1, true},
		{"Different month", dateutil.YearMonth{Year: 2020, Month: time.June}, 7, false},
		{"Matching month before effective year", dateutil.YearMonth{Year: 2019, Month: time.July}, 7, false},
		{"December", dateutil.YearMonth{Year: 2021, Month: time.December}, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IncrementDue(tt.month, tt.incrementMonth, 2020))
		})
	}
}

func TestIncrementDueOncePerYear(t *testing.T) {
	month := dateutil.YearMonth{Year: 2020, Month: time.January}
	due := 0
	for i := 0; i < 36; i++ {
		if IncrementDue(month, 4, 2020) {
			due++
		}
		month = month.Next()
	}
	assert.Equal(t, 3, due)
}
