package finplan

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoalParameters(t *testing.T) {
	p, err := NewGoalParameters(GoalInput{
		Target:              100_000_000,
		Years:               10,
		PresentValue:        10_000_000,
		MonthlyContribution: 300_000,
		AnnualReturn:        0.06,
	})
	require.NoError(t, err)
	assert.Equal(t, 100_000_000.0, p.Target())
	assert.Equal(t, 10, p.Years())
	assert.Equal(t, 120, p.Months())
	assert.Equal(t, 10_000_000.0, p.PresentValue())
	assert.Equal(t, 300_000.0, p.MonthlyContribution())
	assert.InDelta(t, 0.005, p.MonthlyRate(), 1e-15)
}

func TestNewGoalParameters_Invalid(t *testing.T) {
	valid := GoalInput{Target: 1, Years: 1}
	tests := []struct {
		field  string
		modify func(*GoalInput)
	}{
		{"target", func(in *GoalInput) { in.Target = 0 }},
		{"target", func(in *GoalInput) { in.Target = -10 }},
		{"target", func(in *GoalInput) { in.Target = math.NaN() }},
		{"years", func(in *GoalInput) { in.Years = 0 }},
		{"years", func(in *GoalInput) { in.Years = -1 }},
		{"years", func(in *GoalInput) { in.Years = MaxYears + 1 }},
		{"present_value", func(in *GoalInput) { in.PresentValue = -1 }},
		{"monthly_contribution", func(in *GoalInput) { in.MonthlyContribution = -1 }},
		{"monthly_contribution", func(in *GoalInput) { in.MonthlyContribution = math.Inf(1) }},
		{"annual_return", func(in *GoalInput) { in.AnnualReturn = -1.01 }},
	}
	for _, tt := range tests {
		in := valid
		tt.modify(&in)
		_, err := NewGoalParameters(in)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "%+v", in)
		assert.Equal(t, tt.field, verr.Field)
	}

	in := valid
	in.AnnualReturn = -1
	_, err := NewGoalParameters(in)
	assert.NoError(t, err)

	in = valid
	in.Years = MaxYears
	_, err = NewGoalParameters(in)
	assert.NoError(t, err)
}
