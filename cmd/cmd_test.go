package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/etnz/finplan/config"
)

// setup replaces the application input, output, clock and configuration
// for the duration of a test. Charts are disabled.
func setup(t *testing.T, input string) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer

	oldIn, oldOut, oldNow, oldCfg, oldDir := stdin, stdout, now, cfg, *outputDir
	t.Cleanup(func() {
		stdin, stdout, now, cfg, *outputDir = oldIn, oldOut, oldNow, oldCfg, oldDir
	})

	stdin = strings.NewReader(input)
	stdout = &out
	now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }
	cfg = config.Default()
	cfg.Chart.Save = false
	cfg.Chart.Show = false
	*outputDir = t.TempDir()
	return &out
}

func prompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func run(t *testing.T, r interface {
	run(context.Context, *Prompter) error
}) error {
	t.Helper()
	return r.run(context.Background(), NewPrompter(stdin, stdout))
}
