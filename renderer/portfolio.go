package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finplan"
)

// Portfolio is the view of a portfolio recommendation.
type Portfolio struct {
	Category  finplan.RiskCategory
	Trace     string
	Survey    *finplan.QuestionnaireResult // nil when the survey was skipped
	Amount    finplan.Money
	Classic   *finplan.ClassicSplit // nil when not configured
	Positions []finplan.Position
}

// PortfolioMarkdown renders a portfolio recommendation.
func PortfolioMarkdown(p *Portfolio) string {
	var b strings.Builder

	fmt.Fprint(&b, "# 포트폴리오 추천\n\n")
	if p.Survey != nil {
		fmt.Fprintf(&b, "- 설문 결과: %s (평균점수 %.2f)\n", p.Survey.Category.Label(), p.Survey.Mean)
	}
	fmt.Fprintf(&b, "- 최종 성향: **%s** %s\n", p.Category.Label(), p.Trace)
	fmt.Fprintf(&b, "- 총 투자금: %s\n", p.Amount)
	if p.Classic != nil {
		fmt.Fprintf(&b, "- 기본 배분: %s\n", p.Classic)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "| 자산/섹터 | 비중 | 금액 | 예시 ETF |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---|")
	for _, pos := range p.Positions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			pos.Asset,
			finplan.Rate(pos.Weight),
			pos.Amount,
			strings.Join(pos.Examples, ", "),
		)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "코멘트: %s\n", finplan.Comment(p.Category))

	return b.String()
}
