package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// printMarkdown renders md for the terminal when w is one, and writes it
// raw otherwise.
func printMarkdown(w io.Writer, md string) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w, md)
		return
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	zap.L().Debug("markdown rendering failed", zap.Error(err))
	fmt.Fprint(w, md)
}
