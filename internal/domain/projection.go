package domain

import (
	"time"

	"github.com/ropa/arrear-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ArrearRequest is the explicit input to a projection. Months are kept as the raw
// strings a form or config supplies so that parsing failures surface as ErrInvalidDateRange.
type ArrearRequest struct {
	InitialGradePay GradePay `yaml:"initial_grade_pay" json:"initial_grade_pay"`
	InitialBasic    int64    `yaml:"initial_basic" json:"initial_basic"`
	IncrementMonth  int      `yaml:"increment_month" json:"increment_month"`
	ArrearUpto      string   `yaml:"arrear_upto" json:"arrear_upto"`                             // YYYYMM, inclusive
	PromotionMonth  string   `yaml:"promotion_month,omitempty" json:"promotion_month,omitempty"` // empty means no promotion
}

// DefaultArrearRequest mirrors the starting values of the arrear form
func DefaultArrearRequest() ArrearRequest {
	return ArrearRequest{
		InitialGradePay: 6600,
		InitialBasic:    73700,
		IncrementMonth:  int(time.July),
		ArrearUpto:      "202602",
	}
}

// MonthlyRecord is one row of the arrear statement
type MonthlyRecord struct {
	Month     dateutil.YearMonth `json:"month"`
	Label     string             `json:"label"`
	GradePay  GradePay           `json:"grade_pay"`
	Step      int                `json:"step"`
	OldBasic  decimal.Decimal    `json:"old_basic"`
	NewBasic  decimal.Decimal    `json:"new_basic"`
	DARate    decimal.Decimal    `json:"da_rate"`
	DAPercent int64              `json:"da_percent"`
	OldTotal  decimal.Decimal    `json:"old_total"`
	NewTotal  decimal.Decimal    `json:"new_total"`
	Arrear    decimal.Decimal    `json:"monthly_arrear"`

	Promoted  bool `json:"promoted,omitempty"`  // promotion fixation applied this month
	Increment bool `json:"increment,omitempty"` // annual increment applied this month
}

// ProjectionResult is the full arrear statement for one request
type ProjectionResult struct {
	Request     ArrearRequest   `json:"request"`
	Records     []MonthlyRecord `json:"records"`
	TotalArrear decimal.Decimal `json:"total_arrear"`
}

// Months returns the number of simulated months
func (pr *ProjectionResult) Months() int {
	return len(pr.Records)
}

// Last returns the final record, if any
func (pr *ProjectionResult) Last() (MonthlyRecord, bool) {
	if len(pr.Records) == 0 {
		return MonthlyRecord{}, false
	}
	return pr.Records[len(pr.Records)-1], true
}

// ScenarioProjection pairs a named scenario with its result
type ScenarioProjection struct {
	Name    string            `json:"name"`
	Result  *ProjectionResult `json:"result"`
	Summary ProjectionSummary `json:"summary"`
}

// ProjectionSummary gives headline figures derived from a result
type ProjectionSummary struct {
	Months            int                 `json:"months"`
	TotalArrear       decimal.Decimal     `json:"total_arrear"`
	PeakMonthlyArrear decimal.Decimal     `json:"peak_monthly_arrear"`
	IncrementsApplied int                 `json:"increments_applied"`
	PromotionMonth    *dateutil.YearMonth `json:"promotion_month,omitempty"`
	FinalGradePay     GradePay            `json:"final_grade_pay"`
	FinalStep         int                 `json:"final_step"`
	FinalOldBasic     decimal.Decimal     `json:"final_old_basic"`
	FinalNewBasic     decimal.Decimal     `json:"final_new_basic"`
	YearlyTotals      []YearTotal         `json:"yearly_totals"`
}

// YearTotal is the arrear accumulated within one calendar year
type YearTotal struct {
	Year   int             `json:"year"`
	Months int             `json:"months"`
	Arrear decimal.Decimal `json:"arrear"`
}

// ArrearReport is what export formatters consume
type ArrearReport struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Scenarios   []ScenarioProjection `json:"scenarios"`
}

// GrandTotal sums the arrear of every scenario in the report
func (r *ArrearReport) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, sc := range r.Scenarios {
		if sc.Result != nil {
			total = total.Add(sc.Result.TotalArrear)
		}
	}
	return total
}
