// Package charts renders the four-panel Iris figure with gonum/plot.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/danmuck/labkit/internal/dataset"
	"github.com/danmuck/labkit/internal/observability"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	DefaultPath  = "iris_visualizations.png"
	DefaultTitle = "Iris Dataset Visualizations"
	rows         = 2
	cols         = 2
)

var ErrInvalidOptions = errors.New("charts: invalid options")

var (
	barColors = []color.Color{
		color.RGBA{R: 135, G: 206, B: 235, A: 255}, // skyblue
		color.RGBA{R: 250, G: 128, B: 114, A: 255}, // salmon
		color.RGBA{R: 144, G: 238, B: 144, A: 255}, // lightgreen
	}
	// viridis at 0, 0.5, 1
	scatterColors = []color.Color{
		color.RGBA{R: 0x44, G: 0x01, B: 0x54, A: 255},
		color.RGBA{R: 0x21, G: 0x91, B: 0x8c, A: 255},
		color.RGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 255},
	}
	histColor = color.NRGBA{R: 128, G: 0, B: 128, A: 179}
	lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
	Bins   int
	Title  string
}

func DefaultOptions() Options {
	return Options{
		Width:  15 * vg.Inch,
		Height: 12 * vg.Inch,
		DPI:    100,
		Bins:   15,
		Title:  DefaultTitle,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.DPI <= 0 {
		return fmt.Errorf("%w: dpi %d", ErrInvalidOptions, o.DPI)
	}
	if o.Bins <= 0 {
		return fmt.Errorf("%w: bins %d", ErrInvalidOptions, o.Bins)
	}
	return nil
}

// Figure is a 2x2 grid of panels ready to draw.
type Figure struct {
	opts   Options
	panels [][]*plot.Plot
}

// NewFigure builds the line, bar, histogram and scatter panels concurrently.
func NewFigure(frame *dataset.Frame, opts Options) (*Figure, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if frame == nil || frame.Rows() == 0 {
		return nil, dataset.ErrEmptyDataset
	}

	panels := make([][]*plot.Plot, rows)
	for i := range panels {
		panels[i] = make([]*plot.Plot, cols)
	}

	var g errgroup.Group
	g.Go(func() (err error) {
		panels[0][0], err = linePanel(frame)
		return err
	})
	g.Go(func() (err error) {
		panels[0][1], err = barPanel(frame)
		return err
	})
	g.Go(func() (err error) {
		panels[1][0], err = histPanel(frame, opts.Bins)
		return err
	})
	g.Go(func() (err error) {
		panels[1][1], err = scatterPanel(frame)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Figure{opts: opts, panels: panels}, nil
}

// Panel returns the plot at row r, column c.
func (f *Figure) Panel(r, c int) *plot.Plot {
	return f.panels[r][c]
}

// WritePNG draws all panels onto one canvas and encodes it as PNG.
func (f *Figure) WritePNG(w io.Writer) error {
	start := time.Now()
	img := vgimg.NewWith(
		vgimg.UseWH(f.opts.Width, f.opts.Height),
		vgimg.UseDPI(f.opts.DPI),
	)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Points(24),
		PadY:      vg.Points(24),
		PadTop:    vg.Points(48),
		PadBottom: vg.Points(12),
		PadLeft:   vg.Points(12),
		PadRight:  vg.Points(12),
	}
	canvases := plot.Align(f.panels, tiles, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.panels[r][c].Draw(canvases[r][c])
		}
	}

	if f.opts.Title != "" {
		sty := text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, vg.Points(16)),
			XAlign:  text.XCenter,
			YAlign:  text.YTop,
			Handler: plot.DefaultTextHandler,
		}
		top := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Points(12)}
		dc.FillText(sty, top, f.opts.Title)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("charts: encode png: %w", err)
	}
	observability.RecordChartRender(time.Since(start))
	return nil
}

// Save writes the PNG to path, replacing any existing file.
func (f *Figure) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("charts: create %s: %w", path, err)
	}
	if err := f.WritePNG(out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
