package charts

import (
	"errors"
	"fmt"
	"math"

	"github.com/danmuck/labkit/internal/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var errNoValues = errors.New("no non-missing values")

func column(frame *dataset.Frame, name string) ([]float64, error) {
	values, ok := frame.Column(name)
	if !ok {
		return nil, fmt.Errorf("charts: %w: %q", dataset.ErrUnknownColumn, name)
	}
	return values, nil
}

// linePanel plots sepal length against row index.
func linePanel(frame *dataset.Frame) (*plot.Plot, error) {
	values, err := column(frame, dataset.SepalLength)
	if err != nil {
		return nil, err
	}
	xys := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i), Y: v})
	}
	if len(xys) == 0 {
		return nil, fmt.Errorf("charts: line panel: %w", errNoValues)
	}

	p := plot.New()
	p.Title.Text = "Sepal Length Trend"
	p.Y.Label.Text = "Sepal Length (cm)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("charts: line panel: %w", err)
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(1)
	p.Add(line)
	return p, nil
}

// barPanel plots mean petal length per species, one colored bar each.
func barPanel(frame *dataset.Frame) (*plot.Plot, error) {
	means, err := frame.MeanBySpecies(dataset.PetalLength)
	if err != nil {
		return nil, fmt.Errorf("charts: bar panel: %w", err)
	}

	p := plot.New()
	p.Title.Text = "Average Petal Length by Species"
	p.Y.Label.Text = "Length (cm)"
	p.X.Label.Text = dataset.SpeciesColumn
	p.Add(plotter.NewGrid())

	for i, mean := range means {
		if math.IsNaN(mean) {
			continue
		}
		bar, err := plotter.NewBarChart(plotter.Values{mean}, vg.Points(40))
		if err != nil {
			return nil, fmt.Errorf("charts: bar panel: %w", err)
		}
		bar.XMin = float64(i)
		bar.Color = barColors[i%len(barColors)]
		bar.LineStyle.Width = 0
		p.Add(bar)
	}
	p.NominalX(frame.Categories...)
	return p, nil
}

// histPanel bins sepal width.
func histPanel(frame *dataset.Frame, bins int) (*plot.Plot, error) {
	values, err := column(frame, dataset.SepalWidth)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Sepal Width Distribution"
	p.X.Label.Text = "Width (cm)"
	p.Y.Label.Text = "Frequency"

	present := make(plotter.Values, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return nil, fmt.Errorf("charts: histogram panel: %w", errNoValues)
	}

	hist, err := plotter.NewHist(present, bins)
	if err != nil {
		return nil, fmt.Errorf("charts: histogram panel: %w", err)
	}
	hist.FillColor = histColor
	p.Add(hist)
	return p, nil
}

// scatterPanel plots sepal length vs petal length with one series per species.
func scatterPanel(frame *dataset.Frame) (*plot.Plot, error) {
	xs, err := column(frame, dataset.SepalLength)
	if err != nil {
		return nil, err
	}
	ys, err := column(frame, dataset.PetalLength)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = "Sepal vs Petal Length"
	p.X.Label.Text = dataset.SepalLength
	p.Y.Label.Text = dataset.PetalLength
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for ci, species := range frame.Categories {
		var xys plotter.XYs
		for i, s := range frame.Species {
			if s == species && !math.IsNaN(xs[i]) && !math.IsNaN(ys[i]) {
				xys = append(xys, plotter.XY{X: xs[i], Y: ys[i]})
			}
		}
		if len(xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("charts: scatter panel: %w", err)
		}
		sc.GlyphStyle.Color = scatterColors[ci%len(scatterColors)]
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(species, sc)
	}
	return p, nil
}
