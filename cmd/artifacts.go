package cmd

import (
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/etnz/finplan/chart"
	"github.com/etnz/finplan/renderer"
)

// artifacts collects the files written next to a report. Failures are
// logged and never stop the report.
type artifacts struct {
	opts  chart.Options
	files []renderer.Artifact
}

func (a *artifacts) add(label, path string) {
	a.files = append(a.files, renderer.Artifact{Label: label, Path: path})
}

// font returns the configured chart font, or nil for the built-in one.
func (a *artifacts) font() *truetype.Font {
	if a.opts.FontPath == "" {
		return nil
	}
	f, err := chart.LoadFont(a.opts.FontPath)
	if err != nil {
		zap.L().Warn("chart font unavailable, using the built-in font", zap.Error(err))
		return nil
	}
	return f
}

// chart draws and publishes a chart when charts are enabled.
func (a *artifacts) chart(label, name string, draw func(*truetype.Font) ([]byte, error)) {
	if !a.opts.Enabled() {
		return
	}
	png, err := draw(a.font())
	if err != nil {
		zap.L().Warn("chart skipped", zap.String("chart", name), zap.Error(err))
		return
	}
	path, err := chart.Publish(png, name, a.opts)
	if err != nil {
		zap.L().Warn("chart not published", zap.String("chart", name), zap.Error(err))
	}
	if path != "" {
		a.add(label, path)
	}
}

// write saves a file in the output directory with create.
func (a *artifacts) write(label, file string, create func(path string) error) {
	if err := os.MkdirAll(a.opts.Dir, 0755); err != nil {
		zap.L().Warn("output directory unavailable", zap.String("dir", a.opts.Dir), zap.Error(err))
		return
	}
	path := filepath.Join(a.opts.Dir, file)
	if err := create(path); err != nil {
		zap.L().Warn("file not written", zap.String("path", path), zap.Error(err))
		return
	}
	a.add(label, path)
}

// html writes the report as an HTML page.
func (a *artifacts) html(title, name, md string) {
	a.write("HTML 보고서", name+".html", func(path string) error {
		page, err := renderer.HTML(title, md)
		if err != nil {
			return err
		}
		return eris.Wrapf(os.WriteFile(path, []byte(page), 0644), "cmd: write %s", path)
	})
}

func (a *artifacts) markdown() string { return renderer.ArtifactsMarkdown(a.files) }
