package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrEmptyDataset  = errors.New("dataset: no rows")
	ErrBadHeader     = errors.New("dataset: unexpected header")
	ErrUnknownColumn = errors.New("dataset: unknown column")
)

// DType names a column's storage type the way the exploration report prints it.
type DType struct {
	Column string `yaml:"column" json:"column"`
	Type   string `yaml:"type" json:"type"`
}

// Column is one numeric measurement; missing cells are NaN.
type Column struct {
	Name   string
	Values []float64
}

// Frame holds numeric columns plus the categorical species label.
type Frame struct {
	Columns    []Column
	Species    []string
	Categories []string
}

const SpeciesColumn = "species"

func (f *Frame) Rows() int {
	return len(f.Species)
}

// Shape counts the species column alongside the numeric ones.
func (f *Frame) Shape() (rows, cols int) {
	return f.Rows(), len(f.Columns) + 1
}

func (f *Frame) ColumnNames() []string {
	names := make([]string, 0, len(f.Columns)+1)
	for _, c := range f.Columns {
		names = append(names, c.Name)
	}
	return append(names, SpeciesColumn)
}

func (f *Frame) Column(name string) ([]float64, bool) {
	for _, c := range f.Columns {
		if c.Name == name {
			return c.Values, true
		}
	}
	return nil, false
}

func (f *Frame) DTypes() []DType {
	out := make([]DType, 0, len(f.Columns)+1)
	for _, c := range f.Columns {
		out = append(out, DType{Column: c.Name, Type: "float64"})
	}
	return append(out, DType{Column: SpeciesColumn, Type: "category"})
}

// Head renders the first n rows as strings, index first.
func (f *Frame) Head(n int) [][]string {
	if n > f.Rows() {
		n = f.Rows()
	}
	if n < 0 {
		n = 0
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, len(f.Columns)+2)
		row = append(row, strconv.Itoa(i))
		for _, c := range f.Columns {
			row = append(row, formatCell(c.Values[i]))
		}
		row = append(row, f.Species[i])
		rows = append(rows, row)
	}
	return rows
}

// MissingCounts reports NaN cells per numeric column and empty labels for species.
func (f *Frame) MissingCounts() map[string]int {
	out := make(map[string]int, len(f.Columns)+1)
	for _, c := range f.Columns {
		n := 0
		for _, v := range c.Values {
			if math.IsNaN(v) {
				n++
			}
		}
		out[c.Name] = n
	}
	n := 0
	for _, s := range f.Species {
		if s == "" {
			n++
		}
	}
	out[SpeciesColumn] = n
	return out
}

func (f *Frame) validate() error {
	if f.Rows() == 0 {
		return ErrEmptyDataset
	}
	for _, c := range f.Columns {
		if len(c.Values) != f.Rows() {
			return fmt.Errorf("dataset: column %q has %d values for %d rows", c.Name, len(c.Values), f.Rows())
		}
	}
	return nil
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
