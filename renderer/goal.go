package renderer

import (
	"math"

	"github.com/etnz/finplan"
)

// Goal is the view of a goal simulation.
type Goal struct {
	Name         string
	Target       finplan.Money
	Years        int
	PresentValue finplan.Money
	Monthly      finplan.Money
	Rate         finplan.Rate
	Reach        string
	Within       bool
	FinalValue   string
	Shortfall    string
	Yearly       []YearRow
}

// YearRow is the balance at the end of a year.
type YearRow struct {
	Year    int
	Balance string
}

// amount formats v in won, or finplan.OutOfRange when the projection overflowed.
func amount(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return finplan.OutOfRange
	}
	return finplan.M(v).String()
}

// NewGoal builds the view of res.
func NewGoal(name string, res finplan.ProjectionResult) *Goal {
	p := res.Params
	g := &Goal{
		Name:         name,
		Target:       finplan.M(p.Target()),
		Years:        p.Years(),
		PresentValue: finplan.M(p.PresentValue()),
		Monthly:      finplan.M(p.MonthlyContribution()),
		Rate:         p.AnnualReturn(),
		Reach:        finplan.MonthsToYearsMonths(res.ReachMonth),
		Within:       res.WithinHorizon(),
		FinalValue:   amount(res.FinalValue),
		Shortfall:    amount(res.Shortfall()),
	}
	for i, v := range res.YearlySnapshots {
		g.Yearly = append(g.Yearly, YearRow{Year: i + 1, Balance: amount(v)})
	}
	return g
}

// RenderGoal renders the Goal struct to a markdown string.
func RenderGoal(g *Goal) string {
	partials := map[string]string{
		"goal_summary": "goal_summary.md",
		"goal_reach":   "goal_reach.md",
		"goal_yearly":  "goal_yearly.md",
	}
	return renderTemplate("goal", "goal.md", partials, g)
}

// GoalMarkdown renders the report of a goal simulation.
func GoalMarkdown(name string, res finplan.ProjectionResult) string {
	return RenderGoal(NewGoal(name, res))
}
