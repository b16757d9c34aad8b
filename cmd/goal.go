package cmd

import (
	"context"
	"flag"

	"github.com/golang/freetype/truetype"
	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/chart"
	"github.com/etnz/finplan/renderer"
	"github.com/etnz/finplan/sheet"
)

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	name   string
	target string
	years  string
	pv     string
	pmt    string
	rate   string
	out    artifactFlags
	xlsx   bool
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "simulate the monthly growth towards a savings goal" }
func (*goalCmd) Usage() string {
	return `fpl goal [-name <label>] [-target <won>] [-years <n>] [-pv <won>] [-pmt <won>] [-rate <rate>] [-save] [-show] [-html] [-xlsx]

  Projects the balance month by month, with monthly compounding and a
  contribution at the end of each month, and tells when the target is met.
  Values that are not given are asked for.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal, e.g. 내 집 마련")
	f.StringVar(&c.target, "target", "", "Target amount, in won")
	f.StringVar(&c.years, "years", "", "Horizon, in years")
	f.StringVar(&c.pv, "pv", "", "Capital already invested, in won")
	f.StringVar(&c.pmt, "pmt", "", "Monthly contribution, in won")
	f.StringVar(&c.rate, "rate", "", "Expected annual return: 5, 5% and 0.05 are all 5%")
	c.out.setFlags(f)
	f.BoolVar(&c.xlsx, "xlsx", false, "Also write the monthly schedule as an XLSX workbook in the output directory")
}

func (c *goalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return exitStatus(c.run(ctx, NewPrompter(stdin, stdout)))
}

func (c *goalCmd) run(_ context.Context, p *Prompter) error {
	name, err := p.Text("목표 이름 (예: 내 집 마련, 은퇴자금, 여행 자금 등): ", c.name)
	if err != nil {
		return err
	}
	target, err := p.Int("목표 금액(원, 예: 100,000,000): ", c.target, 1)
	if err != nil {
		return err
	}
	years, err := p.IntBetween("목표 기간(년, 예: 10): ", c.years, 1, finplan.MaxYears)
	if err != nil {
		return err
	}
	pv, err := p.Int("현재 보유 자산(원, 예: 10,000,000): ", c.pv, 0)
	if err != nil {
		return err
	}
	pmt, err := p.Int("월 투자 금액(원, 예: 300,000): ", c.pmt, 0)
	if err != nil {
		return err
	}
	rate, err := p.Rate("예상 연 수익률 (예: 5 또는 0.05 또는 5%): ", c.rate, 0)
	if err != nil {
		return err
	}

	params, err := finplan.NewGoalParameters(finplan.GoalInput{
		Target:              float64(target),
		Years:               int(years),
		PresentValue:        float64(pv),
		MonthlyContribution: float64(pmt),
		AnnualReturn:        rate,
	})
	if err != nil {
		return err
	}
	res := finplan.Project(params)
	zap.L().Debug("goal projected",
		zap.String("goal", name),
		zap.Int("reach_month", res.ReachMonth),
		zap.Float64("final_value", res.FinalValue))

	md := renderer.GoalMarkdown(name, res)

	out := artifacts{opts: chartOptions(c.out.save, c.out.show)}
	stamp := now()
	out.chart("누적 원금 vs 평가액", chart.ArtifactName("", name, "progress", stamp), func(font *truetype.Font) ([]byte, error) {
		return chart.Progress(name, res, font)
	})
	base := chart.ArtifactName("", name, "", stamp)
	if c.xlsx {
		out.write("월별 일정 스프레드시트", base+".xlsx", func(path string) error {
			return sheet.WriteProjection(path, name, res)
		})
	}
	if c.out.html {
		out.html(name, base, md)
	}

	printMarkdown(stdout, md+"\n"+out.markdown())
	return nil
}
