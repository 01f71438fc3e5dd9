package cli

import (
	"github.com/danmuck/labkit/internal/charts"
	"github.com/danmuck/labkit/internal/config"
	"github.com/danmuck/labkit/internal/report"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

func irisCmd(root *rootOptions) *cobra.Command {
	var summary, figure string

	c := &cobra.Command{
		Use:   "iris",
		Short: "Explore the Iris dataset and save a 2x2 chart figure",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := reportOptions(root.cfg.Iris)
			if figure != "" {
				opts.FigurePath = figure
			}
			if summary != "" {
				opts.SummaryPath = summary
			}
			return report.NewAnalysis(opts).Run(cmd.OutOrStdout())
		},
	}

	c.Flags().StringVar(&figure, "figure", "", "figure output path (overrides [iris].figure_path)")
	c.Flags().StringVar(&summary, "summary", "", "also write a YAML summary to this path")
	return c
}

func chartOptions(ic config.IrisConfig) charts.Options {
	opts := charts.DefaultOptions()
	opts.Width = vg.Length(ic.WidthIn) * vg.Inch
	opts.Height = vg.Length(ic.HeightIn) * vg.Inch
	opts.Bins = ic.HistBins
	return opts
}

func reportOptions(ic config.IrisConfig) report.Options {
	opts := report.DefaultOptions()
	opts.HeadRows = ic.HeadRows
	opts.FigurePath = ic.FigurePath
	opts.SummaryPath = ic.SummaryPath
	opts.Chart = chartOptions(ic)
	return opts
}
