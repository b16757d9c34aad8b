package finplan

import "fmt"

// MaxExtensionMonths bounds the search for the reach month past the horizon.
const MaxExtensionMonths = 1200

// ProjectionResult is the monthly growth of a goal over its horizon.
type ProjectionResult struct {
	Params GoalParameters

	// MonthlyBalances[i] is the balance at the end of month i+1.
	MonthlyBalances []float64
	// MonthlyPrincipal[i] is the capital contributed up to month i+1, the
	// present value included.
	MonthlyPrincipal []float64
	// YearlySnapshots holds the balance at the end of each year.
	YearlySnapshots []float64
	// ReachMonth is the first 1-based month the balance meets the target, or
	// 0 if it does not within MaxExtensionMonths past the horizon.
	ReachMonth int
	// FinalValue is the balance at the horizon.
	FinalValue float64
}

// Reached reports whether the target is met at all.
func (r ProjectionResult) Reached() bool { return r.ReachMonth > 0 }

// WithinHorizon reports whether the target is met before the horizon ends.
func (r ProjectionResult) WithinHorizon() bool {
	return r.Reached() && r.ReachMonth <= r.Params.Months()
}

// Shortfall is what is missing at the horizon to meet the target, never negative.
func (r ProjectionResult) Shortfall() float64 {
	return max(0, r.Params.Target()-r.FinalValue)
}

// Project simulates p month by month: each month the balance grows by the
// monthly rate and then receives the contribution.
//
// If the target is not met within the horizon the simulation carries on,
// without recording, for up to MaxExtensionMonths to find when it would be.
func Project(p GoalParameters) ProjectionResult {
	months := p.Months()
	r := p.MonthlyRate()
	res := ProjectionResult{
		Params:           p,
		MonthlyBalances:  make([]float64, 0, months),
		MonthlyPrincipal: make([]float64, 0, months),
		YearlySnapshots:  make([]float64, 0, p.Years()),
	}

	balance := p.PresentValue()
	principal := p.PresentValue()
	for m := 1; m <= months; m++ {
		balance = balance*(1+r) + p.MonthlyContribution()
		principal += p.MonthlyContribution()
		res.MonthlyBalances = append(res.MonthlyBalances, balance)
		res.MonthlyPrincipal = append(res.MonthlyPrincipal, principal)
		if res.ReachMonth == 0 && balance >= p.Target() {
			res.ReachMonth = m
		}
		if m%12 == 0 {
			res.YearlySnapshots = append(res.YearlySnapshots, balance)
		}
	}
	res.FinalValue = balance

	if res.ReachMonth == 0 {
		for extra := 1; extra <= MaxExtensionMonths; extra++ {
			balance = balance*(1+r) + p.MonthlyContribution()
			if balance >= p.Target() {
				res.ReachMonth = months + extra
				break
			}
		}
	}
	return res
}

// Unreachable is how MonthsToYearsMonths describes a missing reach month.
const Unreachable = "달성 불가"

// OutOfRange describes a balance that overflowed float64. Project computes
// such balances as they are; only presentation replaces them.
const OutOfRange = "계산 범위 초과"

// MonthsToYearsMonths describes a 1-based month count as years and months:
// 1 is "1개월", 12 is "12개월" and 13 is "1년 1개월". A month of 0 or less
// means the target is never reached and gives Unreachable.
func MonthsToYearsMonths(m int) string {
	if m <= 0 {
		return Unreachable
	}
	y := (m - 1) / 12
	mm := (m-1)%12 + 1
	if y > 0 {
		return fmt.Sprintf("%d년 %d개월", y, mm)
	}
	return fmt.Sprintf("%d개월", mm)
}
