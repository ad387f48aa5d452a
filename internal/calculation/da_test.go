package calculation

import (
	"testing"
	"time"

	"github.com/ropa/arrear-calculator/internal/domain"
	"github.com/ropa/arrear-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLookupDA(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"Before history defaults to earliest", time.Date(2019, 12, 15, 0, 0, 0, 0, time.UTC), "0.10"},
		{"First effective date", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), "0.10"},
		{"Last day before second order", time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), "0.10"},
		{"Second order effective date", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), "0.13"},
		{"Month before March 2023 order", time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), "0.13"},
		{"March 2023 order", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), "0.16"},
		{"January 2024 order", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "0.20"},
		{"April 2024 order", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "0.24"},
		{"April 2025 order", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), "0.28"},
		{"Far future keeps latest rate", time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), "0.28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := LookupDA(domain.RevisedDAHistory, tt.at)
			assert.True(t, rate.Equal(decimal.RequireFromString(tt.expected)),
				"Expected %s, got %s", tt.expected, rate)
		})
	}
}

func TestLookupDAEmptyHistory(t *testing.T) {
	assert.True(t, LookupDA(nil, time.Now()).IsZero())
}

func TestLookupDAMonotonic(t *testing.T) {
	month := dateutil.YearMonth{Year: 2019, Month: time.June}
	end := dateutil.YearMonth{Year: 2027, Month: time.December}
	prev := LookupDA(domain.RevisedDAHistory, month.Time())
	for ; !month.After(end); month = month.Next() {
		rate := LookupDA(domain.RevisedDAHistory, month.Time())
		assert.True(t, rate.GreaterThanOrEqual(prev), "DA decreased at %s: %s -> %s", month, prev, rate)
		prev = rate
	}
}

func TestDAPercent(t *testing.T) {
	assert.Equal(t, int64(10), DAPercent(decimal.RequireFromString("0.10")))
	assert.Equal(t, int64(13), DAPercent(decimal.RequireFromString("0.13")))
	assert.Equal(t, int64(28), DAPercent(decimal.RequireFromString("0.28")))
	assert.Equal(t, int64(13), DAPercent(decimal.RequireFromString("0.125")))
}
