// Package sheet exports goal projections as spreadsheets.
package sheet

import (
	"math"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/etnz/finplan"
)

// Sheet names.
const (
	Monthly = "monthly"
	Yearly  = "yearly"
	Summary = "summary"
)

// WriteProjection saves res as an XLSX workbook at path. It has a summary
// sheet, the monthly schedule (month, principal, balance) and the yearly
// balances.
func WriteProjection(path, label string, res finplan.ProjectionResult) error {
	f := xlsx.NewFile()

	summary, err := f.AddSheet(Summary)
	if err != nil {
		return eris.Wrap(err, "sheet: add summary")
	}
	p := res.Params
	addRow(summary, "목표", label)
	addRow(summary, "목표 금액", p.Target())
	addRow(summary, "목표 기간(년)", p.Years())
	addRow(summary, "현재 보유 자산", p.PresentValue())
	addRow(summary, "월 투자 금액", p.MonthlyContribution())
	addRow(summary, "예상 연 수익률", float64(p.AnnualReturn()))
	addRow(summary, "기간 말 평가액", res.FinalValue)
	addRow(summary, "달성 예상 시점", finplan.MonthsToYearsMonths(res.ReachMonth))
	addRow(summary, "달성 월", res.ReachMonth)

	monthly, err := f.AddSheet(Monthly)
	if err != nil {
		return eris.Wrap(err, "sheet: add monthly")
	}
	addRow(monthly, "월", "누적 원금", "평가액")
	for i := range res.MonthlyBalances {
		addRow(monthly, i+1, res.MonthlyPrincipal[i], res.MonthlyBalances[i])
	}

	yearly, err := f.AddSheet(Yearly)
	if err != nil {
		return eris.Wrap(err, "sheet: add yearly")
	}
	addRow(yearly, "연차", "평가액")
	for i, v := range res.YearlySnapshots {
		addRow(yearly, i+1, v)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "sheet: save %s", path)
	}
	return nil
}

func addRow(s *xlsx.Sheet, values ...any) {
	row := s.AddRow()
	for _, v := range values {
		cell := row.AddCell()
		switch v := v.(type) {
		case string:
			cell.SetString(v)
		case int:
			cell.SetInt(v)
		case float64:
			if math.IsInf(v, 0) || math.IsNaN(v) {
				cell.SetString(finplan.OutOfRange)
			} else {
				cell.SetFloat(v)
			}
		}
	}
}
