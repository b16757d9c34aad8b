package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// configCmd holds the flags for the 'config' subcommand.
type configCmd struct {
	format string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "print the effective configuration" }
func (*configCmd) Usage() string {
	return `fpl config [-format json|yaml] [<jsonpath>]

  Prints the configuration in use, the file merged with the defaults and the
  FINPLAN_* environment variables. A JSONPath expression selects a part of it:

    fpl config '$.tax.dividend_rate'
    fpl config -format yaml tax
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format: json or yaml")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one JSONPath expression is allowed")
		return subcommands.ExitUsageError
	}
	if c.format != "json" && c.format != "yaml" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	val, err := queryConfig(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var out []byte
	if c.format == "yaml" {
		out, err = yaml.Marshal(val)
	} else {
		out, err = json.MarshalIndent(val, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", eris.Wrap(err, "cmd: encode configuration"))
		return subcommands.ExitFailure
	}
	stdout.Write(out)
	return subcommands.ExitSuccess
}

// queryConfig returns the generic JSON form of the configuration, or the
// part selected by path. A path without the leading "$." gets one.
func queryConfig(path string) (any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, eris.Wrap(err, "cmd: encode configuration")
	}
	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, eris.Wrap(err, "cmd: decode configuration")
	}
	if path == "" {
		return obj, nil
	}
	if path[0] != '$' {
		path = "$." + path
	}
	val, err := jsonpath.Get(path, obj)
	if err != nil {
		return nil, eris.Wrapf(err, "cmd: query %q", path)
	}
	return val, nil
}
