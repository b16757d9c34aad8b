package finplan

import "math"

// GoalInput holds the raw figures of a savings goal, before validation.
type GoalInput struct {
	Target              float64 // amount to reach
	Years               int     // horizon
	PresentValue        float64 // capital already invested
	MonthlyContribution float64
	AnnualReturn        Rate
}

// GoalParameters is a validated savings goal. It can only be built by
// NewGoalParameters and is immutable afterwards.
type GoalParameters struct {
	target     float64
	years      int
	present    float64
	monthly    float64
	annualRate Rate
}

// MaxYears bounds the horizon.
const MaxYears = 100

// NewGoalParameters validates in. The target must be positive, the horizon
// between 1 and MaxYears, the present value and the contribution
// non-negative, and the annual return at least -100%.
func NewGoalParameters(in GoalInput) (GoalParameters, error) {
	switch {
	case !finite(in.Target) || in.Target <= 0:
		return GoalParameters{}, invalid("target", "목표 금액은 0보다 커야 합니다.")
	case in.Years <= 0:
		return GoalParameters{}, invalid("years", "목표 기간은 1년 이상이어야 합니다.")
	case in.Years > MaxYears:
		return GoalParameters{}, invalid("years", "목표 기간은 %d년 이하여야 합니다.", MaxYears)
	case !finite(in.PresentValue) || in.PresentValue < 0:
		return GoalParameters{}, invalid("present_value", "현재 보유 자산은 0 이상이어야 합니다.")
	case !finite(in.MonthlyContribution) || in.MonthlyContribution < 0:
		return GoalParameters{}, invalid("monthly_contribution", "월 투자 금액은 0 이상이어야 합니다.")
	case !finite(float64(in.AnnualReturn)) || in.AnnualReturn < -1:
		return GoalParameters{}, invalid("annual_return", "연 수익률은 -100%% 이상이어야 합니다.")
	}
	return GoalParameters{
		target:     in.Target,
		years:      in.Years,
		present:    in.PresentValue,
		monthly:    in.MonthlyContribution,
		annualRate: in.AnnualReturn,
	}, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Target returns the amount to reach.
func (p GoalParameters) Target() float64 { return p.target }

// Years returns the horizon in years.
func (p GoalParameters) Years() int { return p.years }

// PresentValue returns the capital invested at the start.
func (p GoalParameters) PresentValue() float64 { return p.present }

// MonthlyContribution returns the amount added at the end of every month.
func (p GoalParameters) MonthlyContribution() float64 { return p.monthly }

// AnnualReturn returns the expected yearly return.
func (p GoalParameters) AnnualReturn() Rate { return p.annualRate }

// Months returns the horizon in months.
func (p GoalParameters) Months() int { return p.years * 12 }

// MonthlyRate returns the annual return spread evenly over twelve months.
func (p GoalParameters) MonthlyRate() float64 { return float64(p.annualRate) / 12 }
