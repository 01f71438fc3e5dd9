package report

import (
	"fmt"
	"io"
	"os"

	"github.com/danmuck/labkit/internal/dataset"
	"gopkg.in/yaml.v3"
)

// Summary is the machine-readable form of the report.
type Summary struct {
	Rows      int                `yaml:"rows" json:"rows"`
	Columns   int                `yaml:"columns" json:"columns"`
	DTypes    []dataset.DType    `yaml:"dtypes" json:"dtypes"`
	Missing   map[string]int     `yaml:"missing" json:"missing"`
	Describe  []dataset.Summary  `yaml:"describe" json:"describe"`
	BySpecies []dataset.GroupRow `yaml:"by_species" json:"by_species"`
	Findings  []string           `yaml:"findings" json:"findings"`
}

func Summarize(frame *dataset.Frame) Summary {
	rows, cols := frame.Shape()
	return Summary{
		Rows:      rows,
		Columns:   cols,
		DTypes:    frame.DTypes(),
		Missing:   frame.MissingCounts(),
		Describe:  frame.Describe(),
		BySpecies: frame.GroupMean(),
		Findings:  dataset.Findings(),
	}
}

func Export(w io.Writer, frame *dataset.Frame) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Summarize(frame)); err != nil {
		return fmt.Errorf("report: encode summary: %w", err)
	}
	return enc.Close()
}

func ExportFile(path string, frame *dataset.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := Export(f, frame); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
