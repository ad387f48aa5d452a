package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisedPayMatrices(t *testing.T) {
	assert.Equal(t, []GradePay{6600, 7600}, RevisedPayMatrices.GradePays())

	m6600, err := RevisedPayMatrices.Matrix(6600)
	require.NoError(t, err)
	assert.Len(t, m6600, 28)
	assert.Equal(t, 27, m6600.LastStep())
	assert.True(t, m6600[27].OldBasic.Equal(decimal.NewFromInt(165600)))

	m7600, err := RevisedPayMatrices.Matrix(7600)
	require.NoError(t, err)
	assert.Len(t, m7600, 22)
	assert.True(t, m7600[0].OldBasic.Equal(decimal.NewFromInt(96800)))

	for gp, m := range RevisedPayMatrices {
		for i := 1; i < len(m); i++ {
			assert.True(t, m[i].OldBasic.GreaterThan(m[i-1].OldBasic), "GP %d step %d old basic not increasing", gp, i)
			assert.True(t, m[i].NewBasic.GreaterThan(m[i-1].NewBasic), "GP %d step %d new basic not increasing", gp, i)
		}
		for i, s := range m {
			assert.True(t, s.NewBasic.GreaterThan(s.OldBasic), "GP %d step %d not a raise", gp, i)
		}
	}
}

func TestMatrixUnknownGradePay(t *testing.T) {
	_, err := RevisedPayMatrices.Matrix(4800)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownGradePay)
	assert.Contains(t, err.Error(), "4800")
}

func TestStepForBasic(t *testing.T) {
	m := RevisedPayMatrices[6600]

	step, ok := m.StepForBasic(decimal.NewFromInt(73700))
	assert.True(t, ok)
	assert.Equal(t, 0, step)

	step, ok = m.StepForBasic(decimal.NewFromInt(165600))
	assert.True(t, ok)
	assert.Equal(t, 27, step)

	step, ok = m.StepForBasic(decimal.NewFromInt(73701))
	assert.False(t, ok)
	assert.Equal(t, -1, step)
}

func TestClamp(t *testing.T) {
	m := RevisedPayMatrices[7600]
	assert.Equal(t, 0, m.Clamp(-3))
	assert.Equal(t, 5, m.Clamp(5))
	assert.Equal(t, 21, m.Clamp(22))
	assert.Equal(t, 21, m.Clamp(100))
}

func TestRevisedDAHistorySorted(t *testing.T) {
	require.NotEmpty(t, RevisedDAHistory)
	assert.True(t, RevisionRules.EpochStart.Time().Equal(RevisedDAHistory[0].EffectiveDate))
	for i := 1; i < len(RevisedDAHistory); i++ {
		assert.True(t, RevisedDAHistory[i].EffectiveDate.After(RevisedDAHistory[i-1].EffectiveDate))
		assert.True(t, RevisedDAHistory[i].Rate.GreaterThan(RevisedDAHistory[i-1].Rate))
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		kind string
	}{
		{fmt.Errorf("wrap: %w", ErrInvalidInitialBasic), "InvalidInitialBasic"},
		{fmt.Errorf("wrap: %w", ErrInvalidDateRange), "InvalidDateRange"},
		{ErrUnknownGradePay, "UnknownGradePay"},
		{ErrInvalidIncrementMonth, "InvalidIncrementMonth"},
		{errors.New("disk full"), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, ErrorKind(tt.err), tt.err.Error())
		assert.Equal(t, tt.kind != "", IsValidationError(tt.err))
	}
}

func TestProjectionResultHelpers(t *testing.T) {
	var pr ProjectionResult
	_, ok := pr.Last()
	assert.False(t, ok)
	assert.Zero(t, pr.Months())

	pr.Records = []MonthlyRecord{{Label: "Jan-2020"}, {Label: "Feb-2020"}}
	last, ok := pr.Last()
	assert.True(t, ok)
	assert.Equal(t, "Feb-2020", last.Label)

	report := ArrearReport{Scenarios: []ScenarioProjection{
		{Result: &ProjectionResult{TotalArrear: decimal.NewFromInt(100)}},
		{Result: nil},
		{Result: &ProjectionResult{TotalArrear: decimal.NewFromInt(50)}},
	}}
	assert.True(t, report.GrandTotal().Equal(decimal.NewFromInt(150)))
}
