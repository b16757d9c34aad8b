package finplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goal(t *testing.T, target float64, years int, pv, pmt float64, rate Rate) GoalParameters {
	t.Helper()
	p, err := NewGoalParameters(GoalInput{
		Target:              target,
		Years:               years,
		PresentValue:        pv,
		MonthlyContribution: pmt,
		AnnualReturn:        rate,
	})
	require.NoError(t, err)
	return p
}

// recurrence replays the monthly recurrence without any bookkeeping, as a
// golden reference.
func recurrence(pv, pmt float64, rate Rate, months int) float64 {
	b := pv
	for i := 0; i < months; i++ {
		b = b*(1+float64(rate)/12) + pmt
	}
	return b
}

func TestProject_Standard(t *testing.T) {
	p := goal(t, 100_000_000, 10, 10_000_000, 300_000, 0.05)
	res := Project(p)

	require.Len(t, res.MonthlyBalances, 120)
	require.Len(t, res.MonthlyPrincipal, 120)
	require.Len(t, res.YearlySnapshots, 10)

	assert.Equal(t, recurrence(10_000_000, 300_000, 0.05, 120), res.FinalValue)
	assert.InDelta(t, 63_054_778.81, res.FinalValue, 0.01)
	assert.Equal(t, res.MonthlyBalances[119], res.FinalValue)

	// reached past the horizon, 14 years and 11 months in
	assert.Equal(t, 179, res.ReachMonth)
	assert.True(t, res.Reached())
	assert.False(t, res.WithinHorizon())
	assert.GreaterOrEqual(t, recurrence(10_000_000, 300_000, 0.05, 179), 100_000_000.0)
	assert.Less(t, recurrence(10_000_000, 300_000, 0.05, 178), 100_000_000.0)
	assert.InDelta(t, 100_000_000-res.FinalValue, res.Shortfall(), 1e-6)
}

func TestProject_Recurrence(t *testing.T) {
	p := goal(t, 50_000_000, 5, 2_000_000, 450_000, 0.07)
	res := Project(p)
	r := p.MonthlyRate()

	assert.Equal(t, 2_000_000*(1+r)+450_000, res.MonthlyBalances[0])
	for i := 1; i < len(res.MonthlyBalances); i++ {
		assert.Equal(t, res.MonthlyBalances[i-1]*(1+r)+450_000, res.MonthlyBalances[i], "month %d", i+1)
	}
	for y, v := range res.YearlySnapshots {
		assert.Equal(t, res.MonthlyBalances[(y+1)*12-1], v, "year %d", y+1)
	}
}

func TestProject_Principal(t *testing.T) {
	p := goal(t, 10_000_000, 3, 1_000_000, 250_000, -0.3)
	res := Project(p)

	assert.Equal(t, 1_250_000.0, res.MonthlyPrincipal[0])
	for i := 1; i < len(res.MonthlyPrincipal); i++ {
		assert.GreaterOrEqual(t, res.MonthlyPrincipal[i], res.MonthlyPrincipal[i-1])
	}
	assert.Equal(t, 1_000_000.0+36*250_000, res.MonthlyPrincipal[35])
}

func TestProject_ReachMonthIsFirstCrossing(t *testing.T) {
	tests := []struct {
		name      string
		params    GoalParameters
		wantReach int
	}{
		{
			name:      "flat balance already at target",
			params:    goal(t, 1_000_000, 1, 1_000_000, 0, 0),
			wantReach: 1,
		},
		{
			name:      "contributions only",
			params:    goal(t, 1_000_000, 1, 0, 100_000, 0),
			wantReach: 10,
		},
		{
			name:      "last month of the horizon",
			params:    goal(t, 1_200_000, 1, 0, 100_000, 0),
			wantReach: 12,
		},
		{
			name:      "first month past the horizon",
			params:    goal(t, 1_300_000, 1, 0, 100_000, 0),
			wantReach: 13,
		},
		{
			name:      "years past the horizon",
			params:    goal(t, 100_000_000, 10, 10_000_000, 300_000, 0.05),
			wantReach: 179,
		},
		{
			name:      "nothing grows",
			params:    goal(t, 1e15, 1, 0, 0, 0),
			wantReach: 0,
		},
		{
			name:      "shrinking balance",
			params:    goal(t, 2_000_000, 2, 1_000_000, 0, -0.12),
			wantReach: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Project(tt.params)
			assert.Equal(t, tt.wantReach, res.ReachMonth)
			p := tt.params
			switch {
			case res.WithinHorizon():
				assert.GreaterOrEqual(t, res.MonthlyBalances[res.ReachMonth-1], p.Target())
				for i := 0; i < res.ReachMonth-1; i++ {
					assert.Less(t, res.MonthlyBalances[i], p.Target())
				}
			case res.Reached():
				for _, b := range res.MonthlyBalances {
					assert.Less(t, b, p.Target())
				}
				assert.Less(t, recurrence(p.PresentValue(), p.MonthlyContribution(), p.AnnualReturn(), res.ReachMonth-1), p.Target())
				assert.GreaterOrEqual(t, recurrence(p.PresentValue(), p.MonthlyContribution(), p.AnnualReturn(), res.ReachMonth), p.Target())
			}
		})
	}
}

func TestProject_FlatAtTarget(t *testing.T) {
	res := Project(goal(t, 1_000_000, 1, 1_000_000, 0, 0))
	for i, b := range res.MonthlyBalances {
		assert.Equal(t, 1_000_000.0, b, "month %d", i+1)
	}
	assert.Equal(t, 1, res.ReachMonth)
	assert.True(t, res.WithinHorizon())
	assert.Zero(t, res.Shortfall())
}

func TestProject_Unreachable(t *testing.T) {
	res := Project(goal(t, 1e15, 1, 0, 0, 0))
	for _, b := range res.MonthlyBalances {
		assert.Zero(t, b)
	}
	assert.Zero(t, res.FinalValue)
	assert.False(t, res.Reached())
	assert.False(t, res.WithinHorizon())
	assert.Equal(t, 1e15, res.Shortfall())
}

func TestProject_ExtensionDoesNotChangeFinalValue(t *testing.T) {
	p := goal(t, 3_000_000, 1, 0, 100_000, 0.02)
	res := Project(p)
	assert.Equal(t, res.MonthlyBalances[11], res.FinalValue)
	assert.Greater(t, res.ReachMonth, 12)
	assert.Len(t, res.MonthlyBalances, 12)
}

func TestProject_NegativeRateNotFloored(t *testing.T) {
	res := Project(goal(t, 1, 1, 1_000, 0, -1))
	// -100% a year is -8.33% a month, the balance shrinks but stays positive
	assert.InDelta(t, recurrence(1_000, 0, -1, 12), res.FinalValue, 1e-9)
	assert.Equal(t, 1, res.ReachMonth)
}

func TestProject_Idempotent(t *testing.T) {
	p := goal(t, 100_000_000, 10, 10_000_000, 300_000, 0.05)
	assert.Equal(t, Project(p), Project(p))
}

func TestMonthsToYearsMonths(t *testing.T) {
	tests := []struct {
		m    int
		want string
	}{
		{1, "1개월"},
		{11, "11개월"},
		{12, "12개월"},
		{13, "1년 1개월"},
		{24, "1년 12개월"},
		{25, "2년 1개월"},
		{179, "14년 11개월"},
		{0, Unreachable},
		{-3, Unreachable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthsToYearsMonths(tt.m), "month %d", tt.m)
	}
}
