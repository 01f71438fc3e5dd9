package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/labkit/internal/dataset"
	"github.com/danmuck/labkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

func testOptions(dir string) Options {
	opts := DefaultOptions()
	opts.FigurePath = filepath.Join(dir, "iris.png")
	opts.Chart.Width = 4 * vg.Inch
	opts.Chart.Height = 3 * vg.Inch
	opts.Chart.DPI = 40
	return opts
}

func TestAnalysisRunPrintsSectionsInOrder(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	opts := testOptions(dir)
	opts.SummaryPath = filepath.Join(dir, "summary.yaml")

	var out bytes.Buffer
	require.NoError(t, NewAnalysis(opts).Run(&out))
	text := out.String()

	sections := []string{
		"Iris Dataset Analysis",
		"=== Dataset First Look ===",
		"=== Dataset Structure ===",
		"Shape: (150, 5)",
		"Data Types:",
		"=== Missing Values ===",
		"=== Basic Statistics ===",
		"=== Statistics by Species ===",
		"=== Interesting Findings ===",
		"1. Setosa has significantly smaller petal dimensions than other species",
		"3. Sepal width has the smallest variance across species",
		"Analysis complete. Visualizations saved as '" + opts.FigurePath + "'",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(text, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", s)
		require.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}
	require.Contains(t, text, "5.843333")
	require.Contains(t, text, "1.462000")

	_, err := os.Stat(opts.FigurePath)
	require.NoError(t, err)
	_, err = os.Stat(opts.SummaryPath)
	require.NoError(t, err)
}

func TestAnalysisLoadFailureSkipsEverythingElse(t *testing.T) {
	testlog.Start(t)
	opts := testOptions(t.TempDir())

	var out bytes.Buffer
	a := NewAnalysis(opts).WithLoader(func() (*dataset.Frame, error) {
		return nil, errors.New("bundle missing")
	})
	require.NoError(t, a.Run(&out))

	require.Contains(t, out.String(), "Error loading dataset: bundle missing")
	require.NotContains(t, out.String(), "=== Basic Statistics ===")
	require.NotContains(t, out.String(), "Analysis complete.")
	_, err := os.Stat(opts.FigurePath)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestAnalysisRunWithMissingCell(t *testing.T) {
	testlog.Start(t)
	opts := testOptions(t.TempDir())
	const csv = `sepal_length,sepal_width,petal_length,petal_width,species
5.1,3.5,1.4,0.2,setosa
4.9,,1.4,0.2,setosa
7.0,3.2,4.7,1.4,versicolor
6.4,3.2,4.5,1.5,versicolor
6.3,3.3,6.0,2.5,virginica
5.8,2.7,5.1,1.9,virginica
`

	var out bytes.Buffer
	a := NewAnalysis(opts).WithLoader(func() (*dataset.Frame, error) {
		return dataset.Parse(strings.NewReader(csv))
	})
	require.NoError(t, a.Run(&out))

	require.Contains(t, out.String(), "Shape: (6, 5)")
	require.Contains(t, out.String(), "Analysis complete.")
	info, err := os.Stat(opts.FigurePath)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestExportYAML(t *testing.T) {
	frame, err := dataset.LoadIris()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, frame))

	var got Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, 150, got.Rows)
	require.Equal(t, 5, got.Columns)
	require.Len(t, got.Describe, 4)
	require.Len(t, got.BySpecies, 3)
	require.Equal(t, "virginica", got.BySpecies[2].Species)
	require.Equal(t, dataset.Findings(), got.Findings)
}
