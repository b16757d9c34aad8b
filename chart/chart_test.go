package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etnz/finplan"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func projection(t *testing.T) finplan.ProjectionResult {
	t.Helper()
	p, err := finplan.NewGoalParameters(finplan.GoalInput{
		Target:              100_000_000,
		Years:               10,
		PresentValue:        10_000_000,
		MonthlyContribution: 300_000,
		AnnualReturn:        0.05,
	})
	require.NoError(t, err)
	return finplan.Project(p)
}

func TestProgress(t *testing.T) {
	png, err := Progress("내 집 마련", projection(t), nil)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:len(pngMagic)])
}

func TestProgress_Empty(t *testing.T) {
	_, err := Progress("empty", finplan.ProjectionResult{}, nil)
	assert.True(t, errors.Is(err, ErrRenderingUnavailable))
}

func TestProgress_Overflow(t *testing.T) {
	p, err := finplan.NewGoalParameters(finplan.GoalInput{
		Target:       100_000_000,
		Years:        100,
		PresentValue: 10_000_000,
		AnnualReturn: 50,
	})
	require.NoError(t, err)
	_, err = Progress("overflow", finplan.Project(p), nil)
	assert.True(t, errors.Is(err, ErrRenderingUnavailable))
}

func TestPie(t *testing.T) {
	model := finplan.DefaultCatalog().Lookup(finplan.Aggressive)
	png, err := Pie(finplan.Aggressive, model, nil)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:len(pngMagic)])

	_, err = Pie(finplan.Aggressive, nil, nil)
	assert.True(t, errors.Is(err, ErrRenderingUnavailable))
}

func TestLoadFont(t *testing.T) {
	font, err := LoadFont("")
	require.NoError(t, err)
	assert.Nil(t, font)

	_, err = LoadFont(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.ErrorContains(t, err, "chart: read font")

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(bad, []byte("not a font"), 0644))
	_, err = LoadFont(bad)
	assert.ErrorContains(t, err, "chart: parse font")
}

func TestArtifactName(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, "내_집_마련_20240309-140507_progress", ArtifactName("", "내 집 마련", "progress", now))
	assert.Equal(t, "portfolio_공격형_20240309-140507", ArtifactName("portfolio", "공격형", "", now))
	assert.Equal(t, "goal_20240309-140507", ArtifactName("", "??", "", now))
}

func TestPublish(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	png := append([]byte{}, pngMagic...)

	path, err := Publish(png, "chart", Options{Save: true, Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chart.png"), path)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestPublish_Disabled(t *testing.T) {
	path, err := Publish(pngMagic, "chart", Options{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestPublish_SaveFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := Publish(pngMagic, "chart", Options{Save: true, Dir: filepath.Join(file, "sub")})
	assert.True(t, errors.Is(err, ErrRenderingUnavailable))
}
