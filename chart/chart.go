// Package chart draws the fpl charts as PNG images and publishes them to the
// output directory or to an image viewer.
package chart

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/rotisserie/eris"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"

	"github.com/etnz/finplan"
)

// ErrRenderingUnavailable is returned when a chart cannot be drawn, saved or
// shown. It is never fatal: callers log it and carry on with text output.
var ErrRenderingUnavailable = eris.New("chart: rendering unavailable")

// manwon is the unit of the progress chart axis.
const manwon = 10000.0

// Options controls where charts go. It replaces any process wide state.
type Options struct {
	Save     bool   // write the PNG to Dir
	Show     bool   // open the PNG in the system image viewer
	Dir      string // output directory
	FontPath string // TrueType font, the built-in one if empty
}

// Enabled reports whether a chart would end up anywhere.
func (o Options) Enabled() bool { return o.Save || o.Show }

// Progress draws the cumulative principal against the projected balance of a
// goal, with the target as a dashed horizontal line. Amounts are in 만원.
func Progress(title string, res finplan.ProjectionResult, font *truetype.Font) ([]byte, error) {
	n := len(res.MonthlyBalances)
	if n == 0 {
		return nil, eris.Wrap(ErrRenderingUnavailable, "chart: empty projection")
	}
	months := make([]float64, n)
	principal := make([]float64, n)
	balance := make([]float64, n)
	target := make([]float64, n)
	for i := range n {
		if b := res.MonthlyBalances[i]; math.IsInf(b, 0) || math.IsNaN(b) {
			return nil, eris.Wrapf(ErrRenderingUnavailable, "chart: balance out of range at month %d", i+1)
		}
		months[i] = float64(i + 1)
		principal[i] = res.MonthlyPrincipal[i] / manwon
		balance[i] = res.MonthlyBalances[i] / manwon
		target[i] = res.Params.Target() / manwon
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("[%s] 누적 원금 vs 평가액", title),
		Font:   font,
		Width:  1000,
		Height: 550,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: "투자 기간 (월)"},
		YAxis: chart.YAxis{Name: "금액 (만원)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "누적 원금",
				XValues: months,
				YValues: principal,
				Style:   chart.Style{StrokeWidth: 2, StrokeColor: drawing.ColorFromHex("1f77b4")},
			},
			chart.ContinuousSeries{
				Name:    "평가액(수익 반영)",
				XValues: months,
				YValues: balance,
				Style:   chart.Style{StrokeWidth: 2, StrokeColor: drawing.ColorFromHex("ff7f0e")},
			},
			chart.ContinuousSeries{
				Name:    "목표 금액(만원)",
				XValues: months,
				YValues: target,
				Style: chart.Style{
					StrokeWidth:     1.5,
					StrokeColor:     drawing.ColorFromHex("2ca02c"),
					StrokeDashArray: []float64{6, 4},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, eris.Wrapf(ErrRenderingUnavailable, "chart: progress: %v", err)
	}
	return buf.Bytes(), nil
}

// Pie draws the weights of an allocation model.
func Pie(category finplan.RiskCategory, model finplan.AllocationModel, font *truetype.Font) ([]byte, error) {
	values := make([]chart.Value, 0, len(model))
	for _, a := range model {
		if a.Weight <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: a.Weight,
			Label: fmt.Sprintf("%s %.1f%%", a.Asset, a.Weight*100),
		})
	}
	if len(values) == 0 {
		return nil, eris.Wrap(ErrRenderingUnavailable, "chart: empty allocation model")
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("[%s] 포트폴리오 비중", category.Label()),
		Font:   font,
		Width:  620,
		Height: 620,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, eris.Wrapf(ErrRenderingUnavailable, "chart: pie: %v", err)
	}
	return buf.Bytes(), nil
}

// LoadFont parses the TrueType font at path. An empty path returns a nil font,
// which makes go-chart use its built-in one.
func LoadFont(path string) (*truetype.Font, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "chart: read font %s", path)
	}
	font, err := truetype.Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "chart: parse font %s", path)
	}
	return font, nil
}

// ArtifactName returns "<prefix>_<slug>_<timestamp>_<suffix>" without empty parts.
func ArtifactName(prefix, label, suffix string, now time.Time) string {
	name := finplan.Slugify(label) + "_" + now.Format("20060102-150405")
	if prefix != "" {
		name = prefix + "_" + name
	}
	if suffix != "" {
		name += "_" + suffix
	}
	return name
}

// Publish writes png according to opts and returns the path of the saved
// file, or "" when it was not saved.
//
// When the chart is only shown it goes to a temporary file.
func Publish(png []byte, name string, opts Options) (string, error) {
	if !opts.Enabled() {
		return "", nil
	}

	var path, saved string
	if opts.Save {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return "", eris.Wrapf(ErrRenderingUnavailable, "chart: create output dir %s: %v", opts.Dir, err)
		}
		path = filepath.Join(opts.Dir, name+".png")
		if err := os.WriteFile(path, png, 0644); err != nil {
			return "", eris.Wrapf(ErrRenderingUnavailable, "chart: save %s: %v", path, err)
		}
		saved = path
		zap.L().Debug("chart saved", zap.String("path", path))
	}

	if opts.Show {
		if path == "" {
			f, err := os.CreateTemp("", name+"-*.png")
			if err != nil {
				return "", eris.Wrapf(ErrRenderingUnavailable, "chart: temp file: %v", err)
			}
			_, err = f.Write(png)
			f.Close()
			if err != nil {
				return "", eris.Wrapf(ErrRenderingUnavailable, "chart: temp file: %v", err)
			}
			path = f.Name()
		}
		if err := open(path); err != nil {
			return saved, eris.Wrapf(ErrRenderingUnavailable, "chart: show %s: %v", path, err)
		}
	}
	return saved, nil
}

// open hands path to the platform image viewer without waiting for it.
func open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
