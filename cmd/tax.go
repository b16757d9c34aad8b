package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/renderer"
)

// taxCmd holds the flags for the 'tax' subcommand.
type taxCmd struct {
	kind  string
	gross string
	buy   string
	sell  string
	qty   string
	rate  string
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "estimate dividend or capital gains tax" }
func (*taxCmd) Usage() string {
	return `fpl tax [-kind dividend] [-gross <won>] [-rate <rate>]
fpl tax [-kind capital] [-buy <won>] [-sell <won>] [-qty <n>] [-rate <rate>]

  Estimates the tax withheld on a dividend or due on a capital gain.
  Rates default to the tax section of the configuration.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Kind of tax: dividend (배당) or capital (양도)")
	f.StringVar(&c.gross, "gross", "", "Gross dividend, in won")
	f.StringVar(&c.buy, "buy", "", "Unit buy price, in won")
	f.StringVar(&c.sell, "sell", "", "Unit sell price, in won")
	f.StringVar(&c.qty, "qty", "", "Quantity sold")
	f.StringVar(&c.rate, "rate", "", "Tax rate, e.g. 15.4% (default from the configuration)")
}

func (c *taxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return exitStatus(c.run(ctx, NewPrompter(stdin, stdout)))
}

const (
	dividendKind = "배당"
	capitalKind  = "양도"
)

var taxKinds = map[string]string{
	"dividend": dividendKind,
	"capital":  capitalKind,
}

func (c *taxCmd) run(_ context.Context, p *Prompter) error {
	preset := c.kind
	if k, ok := taxKinds[preset]; ok {
		preset = k
	}
	kind, err := p.Choice("계산 종류를 선택하세요", preset, []string{dividendKind, capitalKind}, dividendKind)
	if err != nil {
		return err
	}

	if kind == dividendKind {
		gross, err := p.Int("총 배당금(원): ", c.gross, 0)
		if err != nil {
			return err
		}
		rate, err := c.taxRate(cfg.DividendRate())
		if err != nil {
			return err
		}
		t, err := finplan.NewDividendTax(finplan.M(gross), rate)
		if err != nil {
			return err
		}
		printMarkdown(stdout, renderer.DividendTaxMarkdown(t))
		return nil
	}

	buy, err := p.Int("매수가(원): ", c.buy, 0)
	if err != nil {
		return err
	}
	sell, err := p.Int("매도가(원): ", c.sell, 0)
	if err != nil {
		return err
	}
	qty, err := p.Int("수량: ", c.qty, 1)
	if err != nil {
		return err
	}
	rate, err := c.taxRate(cfg.CapitalGainRate())
	if err != nil {
		return err
	}
	t, err := finplan.NewCapitalGainTax(finplan.M(buy), finplan.M(sell), qty, rate)
	if err != nil {
		return err
	}
	printMarkdown(stdout, renderer.CapitalGainTaxMarkdown(t))
	return nil
}

// taxRate returns the -rate flag, or def when it is not given.
func (c *taxCmd) taxRate(def finplan.Rate) (finplan.Rate, error) {
	if c.rate == "" {
		return def, nil
	}
	r, err := finplan.ParseRate(c.rate)
	if err != nil {
		return 0, err
	}
	if r < 0 {
		return 0, &finplan.ValidationError{Field: "rate", Message: "세율은 0 이상이어야 합니다."}
	}
	return r, nil
}
