package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for year-month input. The compact form is what the arrear form uses.
const (
	CompactLayout = "200601"
	DashedLayout  = "2006-01"
	LabelLayout   = "Jan-2006"
)

// YearMonth is a calendar month. Day-of-month never matters for pay calculations.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth builds a YearMonth, normalizing out-of-range months (13 -> January next year).
func NewYearMonth(year int, month time.Month) YearMonth {
	return FromTime(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates a time to its calendar month
func FromTime(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses "YYYYMM" or "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	s = strings.TrimSpace(s)
	layout := CompactLayout
	if strings.Contains(s, "-") {
		layout = DashedLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year-month %q: expected YYYYMM or YYYY-MM", s)
	}
	return FromTime(t), nil
}

// Time returns the first day of the month at midnight UTC
func (ym YearMonth) Time() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether ym is the zero value
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// AddMonths moves n calendar months (n may be negative)
func (ym YearMonth) AddMonths(n int) YearMonth {
	return NewYearMonth(ym.Year, ym.Month+time.Month(n))
}

// Next returns the following calendar month
func (ym YearMonth) Next() YearMonth {
	return ym.AddMonths(1)
}

// Before reports whether ym is strictly earlier than other
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.index() < other.index()
}

// After reports whether ym is strictly later than other
func (ym YearMonth) After(other YearMonth) bool {
	return ym.index() > other.index()
}

// MonthsThrough counts months from ym to end inclusive; 0 when end precedes ym.
func (ym YearMonth) MonthsThrough(end YearMonth) int {
	n := end.index() - ym.index() + 1
	if n < 0 {
		return 0
	}
	return n
}

func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// Label renders the month as "Jan-2020"
func (ym YearMonth) Label() string {
	return ym.Time().Format(LabelLayout)
}

// Compact renders the month as "202001"
func (ym YearMonth) Compact() string {
	return ym.Time().Format(CompactLayout)
}

// String renders the month as "2020-01"
func (ym YearMonth) String() string {
	return ym.Time().Format(DashedLayout)
}

// MarshalText implements encoding.TextMarshaler (used by JSON and YAML encoders).
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ym *YearMonth) UnmarshalText(text []byte) error {
	parsed, err := ParseYearMonth(string(text))
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}
