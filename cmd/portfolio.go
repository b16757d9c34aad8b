package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/google/subcommands"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/chart"
	"github.com/etnz/finplan/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	age     string
	risk    string
	answers string
	amount  string
	out     artifactFlags
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "recommend an asset allocation for a risk profile" }
func (*portfolioCmd) Usage() string {
	return `fpl portfolio [-age <n>] [-risk <category>|-answers <a,b,c,d,e>] [-amount <won>] [-save] [-show] [-html]

  Classifies the investor and splits the amount across the recommended assets.
  Values that are not given are asked for.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.age, "age", "", "Investor age")
	f.StringVar(&c.risk, "risk", "", "Risk category: auto, conservative, neutral or aggressive")
	f.StringVar(&c.answers, "answers", "", "Answers to the five survey questions, e.g. 1,2,3,2,1")
	f.StringVar(&c.amount, "amount", "", "Amount to invest, in won")
	c.out.setFlags(f)
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return exitStatus(c.run(ctx, NewPrompter(stdin, stdout)))
}

// riskChoices are the interactive answers to the risk selection.
var riskChoices = []string{"자동", finplan.Conservative.Label(), finplan.Neutral.Label(), finplan.Aggressive.Label(), "설문"}

func (c *portfolioCmd) run(_ context.Context, p *Prompter) error {
	age, err := p.Int("나이를 입력하세요 (예: 25): ", c.age, 10)
	if err != nil {
		return err
	}

	sel, survey, err := c.selection(p)
	if err != nil {
		return err
	}

	amount, err := p.Int("투자 총액(원)을 입력하세요: ", c.amount, 1)
	if err != nil {
		return err
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	splits, err := cfg.ClassicSplits()
	if err != nil {
		return err
	}

	cat, trace := finplan.Classify(sel, int(age))
	view := &renderer.Portfolio{
		Category:  cat,
		Trace:     trace,
		Survey:    survey,
		Amount:    finplan.M(amount),
		Positions: catalog.Recommend(cat, finplan.M(amount)),
	}
	if s, ok := splits[cat]; ok {
		view.Classic = &s
	}
	md := renderer.PortfolioMarkdown(view)

	out := artifacts{opts: chartOptions(c.out.save, c.out.show)}
	name := chart.ArtifactName("portfolio", cat.Label(), "", now())
	out.chart("포트폴리오 비중 원 그래프", name, func(font *truetype.Font) ([]byte, error) {
		return chart.Pie(cat, catalog.Lookup(cat), font)
	})
	if c.out.html {
		out.html("포트폴리오 추천", name, md)
	}

	printMarkdown(stdout, md+"\n"+out.markdown())
	return nil
}

// selection returns the risk selection from the flags, or asks for it.
// Only the survey gives a questionnaire result.
func (c *portfolioCmd) selection(p *Prompter) (finplan.RiskSelection, *finplan.QuestionnaireResult, error) {
	if c.risk != "" {
		sel, err := finplan.ParseRiskSelection(c.risk)
		if err != nil {
			return finplan.Auto, nil, &finplan.ValidationError{Field: "risk", Message: err.Error()}
		}
		return sel, nil, nil
	}

	preset := ""
	if c.answers != "" {
		preset = "설문"
	}
	choice, err := p.Choice("투자 성향을 선택하세요", preset, riskChoices, "설문")
	if err != nil {
		return finplan.Auto, nil, err
	}
	if choice != "설문" {
		sel, err := finplan.ParseRiskSelection(choice)
		return sel, nil, err
	}
	res, err := p.Survey(c.answers)
	if err != nil {
		return finplan.Auto, nil, err
	}
	return finplan.Select(res.Category), &res, nil
}

// exitStatus reports err and maps it to an exit status: invalid values
// given on the command line are usage errors.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	var verr *finplan.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Invalid value: %v\n", verr)
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
