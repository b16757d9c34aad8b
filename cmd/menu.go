package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu (default)" }
func (*menuCmd) Usage() string {
	return `fpl menu

  Loops over the planning tools, asking for every value. This is what fpl
  runs without a subcommand.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (c *menuCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, NewPrompter(stdin, stdout))
}

// menuEntry is a planning tool reachable from the menu.
type menuEntry struct {
	key   string
	title string
	run   func(context.Context, *Prompter) error
}

func (c *menuCmd) entries() []menuEntry {
	return []menuEntry{
		{"1", "포트폴리오 추천", (&portfolioCmd{}).run},
		{"2", "세금 계산", (&taxCmd{}).run},
		{"3", "목표 시뮬레이터", (&goalCmd{}).run},
	}
}

const quitKey = "4"

func (c *menuCmd) run(ctx context.Context, p *Prompter) subcommands.ExitStatus {
	entries := c.entries()
	keys := make([]string, 0, len(entries)+1)
	line := "메뉴:"
	for _, e := range entries {
		keys = append(keys, e.key)
		line += fmt.Sprintf(" %s) %s ", e.key, e.title)
	}
	keys = append(keys, quitKey)
	line += fmt.Sprintf(" %s) 종료", quitKey)

	p.Println("===== fpl: 포트폴리오 추천 · 세금 계산 · 목표 시뮬레이터 =====")
	for {
		if err := ctx.Err(); err != nil {
			return subcommands.ExitFailure
		}
		p.Println()
		p.Println(line)
		sel, err := p.Choice("메뉴를 선택하세요", "", keys, "")
		if errors.Is(err, io.EOF) {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if sel == quitKey {
			p.Println("프로그램을 종료합니다. 감사합니다!")
			return subcommands.ExitSuccess
		}

		for _, e := range entries {
			if e.key != sel {
				continue
			}
			p.Println()
			p.Println("[" + e.title + "]")
			err := e.run(ctx, p)
			if errors.Is(err, io.EOF) {
				return subcommands.ExitSuccess
			}
			if err != nil {
				p.Println("오류:", err)
			}
		}
	}
}
