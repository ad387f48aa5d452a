package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/ropa/arrear-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// GradePay identifies a pay band in the pre-revised structure
type GradePay int

// PayStep is one level of a pay matrix: the pre-revised basic and its revised counterpart
type PayStep struct {
	OldBasic decimal.Decimal `yaml:"old_basic" json:"old_basic"`
	NewBasic decimal.Decimal `yaml:"new_basic" json:"new_basic"`
}

// PayMatrix is the ordered list of steps for one grade pay, index 0 being the entry level
type PayMatrix []PayStep

// LastStep returns the highest valid step index
func (pm PayMatrix) LastStep() int {
	return len(pm) - 1
}

// StepForBasic finds the step whose pre-revised basic equals basic.
func (pm PayMatrix) StepForBasic(basic decimal.Decimal) (int, bool) {
	for i, s := range pm {
		if s.OldBasic.Equal(basic) {
			return i, true
		}
	}
	return -1, false
}

// Clamp bounds a step index to the matrix
func (pm PayMatrix) Clamp(step int) int {
	if step < 0 {
		return 0
	}
	if step > pm.LastStep() {
		return pm.LastStep()
	}
	return step
}

// PayMatrixTable maps grade pay to its matrix
type PayMatrixTable map[GradePay]PayMatrix

// Matrix returns the matrix for a grade pay or ErrUnknownGradePay
func (t PayMatrixTable) Matrix(gp GradePay) (PayMatrix, error) {
	m, ok := t[gp]
	if !ok || len(m) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGradePay, gp)
	}
	return m, nil
}

// GradePays returns the configured grade pays in ascending order
func (t PayMatrixTable) GradePays() []GradePay {
	gps := make([]GradePay, 0, len(t))
	for gp := range t {
		gps = append(gps, gp)
	}
	sort.Slice(gps, func(i, j int) bool { return gps[i] < gps[j] })
	return gps
}

// DAEntry is a dearness allowance rate and the date it took effect
type DAEntry struct {
	EffectiveDate time.Time       `yaml:"effective_date" json:"effective_date"`
	Rate          decimal.Decimal `yaml:"rate" json:"rate"`
}

// DAHistory is sorted ascending by EffectiveDate
type DAHistory []DAEntry

// SchemeRules holds the fixed policy constants of the revision scheme
type SchemeRules struct {
	EpochStart        dateutil.YearMonth // first month of arrears
	IncrementFromYear int                // increments only fall due from this year
	PromotionGradePay GradePay           // grade every promotion lands on
}

func steps(pairs ...[2]int64) PayMatrix {
	m := make(PayMatrix, len(pairs))
	for i, p := range pairs {
		m[i] = PayStep{OldBasic: decimal.NewFromInt(p[0]), NewBasic: decimal.NewFromInt(p[1])}
	}
	return m
}

func daFrom(date string, rate string) DAEntry {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return DAEntry{EffectiveDate: t, Rate: decimal.RequireFromString(rate)}
}

// RevisedPayMatrices is the ROPA-2020 fixation table shared by the projection engine and
// the reference image renderer.
var RevisedPayMatrices = PayMatrixTable{
	6600: steps(
		[2]int64{73700, 76500}, [2]int64{76000, 78800}, [2]int64{78300, 81200}, [2]int64{80700, 83700},
		[2]int64{83200, 86300}, [2]int64{85700, 88900}, [2]int64{88300, 91600}, [2]int64{91000, 94400},
		[2]int64{93800, 97300}, [2]int64{96700, 100300}, [2]int64{99700, 103400}, [2]int64{102700, 106600},
		[2]int64{105800, 109800}, [2]int64{109000, 113100}, [2]int64{112300, 116500},
		[2]int64{115700, 120000}, [2]int64{119200, 123600}, [2]int64{122800, 127400},
		[2]int64{126500, 131300}, [2]int64{130300, 135300}, [2]int64{134300, 139400},
		[2]int64{138400, 143600}, [2]int64{142600, 148000}, [2]int64{146900, 152500},
		[2]int64{151400, 157100}, [2]int64{156000, 161900}, [2]int64{160700, 166800},
		[2]int64{165600, 171900},
	),
	7600: steps(
		[2]int64{96800, 102600}, [2]int64{99800, 105700}, [2]int64{102800, 108900},
		[2]int64{105900, 112200}, [2]int64{109100, 115600}, [2]int64{112400, 119100},
		[2]int64{115800, 122700}, [2]int64{119300, 126400}, [2]int64{122900, 130200},
		[2]int64{126600, 134200}, [2]int64{130400, 138300}, [2]int64{134400, 142500},
		[2]int64{138500, 146800}, [2]int64{142700, 151300}, [2]int64{147000, 155900},
		[2]int64{151500, 160600}, [2]int64{156100, 165500}, [2]int64{160800, 170500},
		[2]int64{165700, 175700}, [2]int64{170700, 181000}, [2]int64{175900, 186500},
		[2]int64{181200, 192100},
	),
}

// RevisedDAHistory lists DA orders applicable to the revised scale
var RevisedDAHistory = DAHistory{
	daFrom("2020-01-01", "0.10"),
	daFrom("2021-01-01", "0.13"),
	daFrom("2023-03-01", "0.16"),
	daFrom("2024-01-01", "0.20"),
	daFrom("2024-04-01", "0.24"),
	daFrom("2025-04-01", "0.28"),
}

// RevisionRules are the ROPA-2020 scheme constants
var RevisionRules = SchemeRules{
	EpochStart:        dateutil.YearMonth{Year: 2020, Month: time.January},
	IncrementFromYear: 2020,
	PromotionGradePay: 7600,
}
