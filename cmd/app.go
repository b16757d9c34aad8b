// Package cmd implements the fpl command line application.
package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/finplan/chart"
	"github.com/etnz/finplan/config"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&menuCmd{}, "")

	c.Register(&portfolioCmd{}, "planning")
	c.Register(&taxCmd{}, "planning")
	c.Register(&goalCmd{}, "planning")

	c.Register(&configCmd{}, "help")
	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configPath = flag.String("config", config.DefaultPath, "Path to the JSON configuration file")
	outputDir  = flag.String("o", "", "Directory for charts, reports and spreadsheets (overrides chart.output_dir)")
	// Verbose turns on debug logging.
	Verbose = flag.Bool("v", false, "Verbose output")
)

// Replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	now              = time.Now
)

// cfg is the effective configuration, set by Setup.
var cfg = config.Default()

// Setup loads the configuration and initializes the logger. It must be
// called after the flags are parsed. A configuration that cannot be read
// is reported and replaced by the defaults.
func Setup() error {
	loaded, loadErr := config.Load(*configPath)
	if loadErr != nil {
		loaded = config.Default()
	}
	logCfg := loaded.Log
	if *Verbose {
		logCfg.Level = "debug"
	}
	if err := config.InitLogger(logCfg); err != nil {
		return err
	}
	if loadErr != nil {
		zap.L().Warn("configuration ignored, using defaults", zap.String("path", *configPath), zap.Error(loadErr))
	} else if loaded.Source == "" {
		zap.L().Debug("no configuration file, using defaults", zap.String("path", *configPath))
	}
	cfg = loaded
	return nil
}

// Menu runs the interactive menu, the default when no subcommand is given.
func Menu(ctx context.Context) subcommands.ExitStatus {
	return (&menuCmd{}).run(ctx, NewPrompter(stdin, stdout))
}

// chartOptions merges the configuration with the command flags.
func chartOptions(save, show optBool) chart.Options {
	opts := chart.Options{
		Save:     cfg.Chart.Save,
		Show:     cfg.Chart.Show,
		Dir:      cfg.Chart.OutputDir,
		FontPath: cfg.Chart.FontPath,
	}
	if save.set {
		opts.Save = save.value
	}
	if show.set {
		opts.Show = show.value
	}
	if *outputDir != "" {
		opts.Dir = *outputDir
	}
	return opts
}
