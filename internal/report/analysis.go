// Package report prints the Iris exploration report and exports its summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/labkit/internal/charts"
	"github.com/danmuck/labkit/internal/dataset"
	"github.com/danmuck/labkit/internal/logging"
)

type Options struct {
	HeadRows    int
	FigurePath  string
	SummaryPath string
	Chart       charts.Options
}

func DefaultOptions() Options {
	return Options{
		HeadRows:   5,
		FigurePath: charts.DefaultPath,
		Chart:      charts.DefaultOptions(),
	}
}

// Analysis runs load, explore, analyze and plot in order.
type Analysis struct {
	load func() (*dataset.Frame, error)
	opts Options
}

func NewAnalysis(opts Options) *Analysis {
	return &Analysis{load: dataset.LoadIris, opts: opts}
}

// WithLoader swaps the dataset source.
func (a *Analysis) WithLoader(load func() (*dataset.Frame, error)) *Analysis {
	a.load = load
	return a
}

// Run prints the report to w. A load failure is printed, not returned,
// and skips analysis and plotting.
func (a *Analysis) Run(w io.Writer) error {
	fmt.Fprintln(w, "Iris Dataset Analysis")
	fmt.Fprintln(w, "=====================")
	fmt.Fprintln(w)

	frame, err := a.explore(w)
	if err != nil {
		fmt.Fprintf(w, "Error loading dataset: %v\n", err)
		logging.Warnf("report: dataset load failed: %v", err)
		return nil
	}

	a.analyze(w, frame)

	fig, err := charts.NewFigure(frame, a.opts.Chart)
	if err != nil {
		return err
	}
	if err := fig.Save(a.opts.FigurePath); err != nil {
		return err
	}
	logging.Infof("report: figure saved path=%s", a.opts.FigurePath)

	if a.opts.SummaryPath != "" {
		if err := ExportFile(a.opts.SummaryPath, frame); err != nil {
			return err
		}
		logging.Infof("report: summary exported path=%s", a.opts.SummaryPath)
	}

	fmt.Fprintf(w, "\nAnalysis complete. Visualizations saved as '%s'\n", a.opts.FigurePath)
	return nil
}

func (a *Analysis) explore(w io.Writer) (*dataset.Frame, error) {
	frame, err := a.load()
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "=== Dataset First Look ===")
	fmt.Fprintln(w, headTable(frame, a.opts.HeadRows))

	rows, cols := frame.Shape()
	fmt.Fprintln(w, "\n=== Dataset Structure ===")
	fmt.Fprintf(w, "Shape: (%d, %d)\n", rows, cols)
	fmt.Fprintln(w, "\nData Types:")
	fmt.Fprintln(w, dtypeTable(frame))

	fmt.Fprintln(w, "\n=== Missing Values ===")
	fmt.Fprintln(w, missingTable(frame))
	return frame, nil
}

func (a *Analysis) analyze(w io.Writer, frame *dataset.Frame) {
	fmt.Fprintln(w, "\n=== Basic Statistics ===")
	fmt.Fprintln(w, describeTable(frame.Describe()))

	fmt.Fprintln(w, "\n=== Statistics by Species ===")
	fmt.Fprintln(w, groupTable(frame))

	fmt.Fprintln(w, "\n=== Interesting Findings ===")
	var b strings.Builder
	for i, finding := range dataset.Findings() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, finding)
	}
	fmt.Fprint(w, b.String())
}
