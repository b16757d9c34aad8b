// Command fpl is a personal finance planner: portfolio recommendation, tax
// estimates and savings goal simulation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/finplan/cmd"
)

func main() {
	// Exits when invoked by the shell for completion.
	cmd.Completion().Complete("fpl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	flag.Parse()

	if err := cmd.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	os.Exit(run(commander))
}

func run(commander *subcommands.Commander) int {
	defer zap.L().Sync()
	ctx := context.Background()

	if flag.NArg() == 0 {
		return int(cmd.Menu(ctx))
	}

	name := flag.Arg(0)
	known := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, s subcommands.Command) {
		known = known || s.Name() == name
	})
	if !known {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			return code
		}
	}
	return int(commander.Execute(ctx))
}
