package cmd

import (
	"flag"
	"strconv"
)

// optBool is a boolean flag that remembers whether it was given, so that
// the configuration applies when it was not.
type optBool struct {
	set   bool
	value bool
}

func (b *optBool) String() string   { return strconv.FormatBool(b.value) }
func (b *optBool) IsBoolFlag() bool { return true }

func (b *optBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.set, b.value = true, v
	return nil
}

// artifactFlags are the output options shared by the report commands.
type artifactFlags struct {
	save optBool
	show optBool
	html bool
}

func (a *artifactFlags) setFlags(f *flag.FlagSet) {
	f.Var(&a.save, "save", "Save the chart in the output directory (default from chart.save)")
	f.Var(&a.show, "show", "Open the chart in the image viewer (default from chart.show)")
	f.BoolVar(&a.html, "html", false, "Also write the report as HTML in the output directory")
}
