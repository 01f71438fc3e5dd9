package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

//go:embed data/iris.csv
var irisCSV []byte

// Display names used for the four measurements.
const (
	SepalLength = "sepal length (cm)"
	SepalWidth  = "sepal width (cm)"
	PetalLength = "petal length (cm)"
	PetalWidth  = "petal width (cm)"
)

var irisHeader = []string{"sepal_length", "sepal_width", "petal_length", "petal_width", "species"}

var irisColumns = []string{SepalLength, SepalWidth, PetalLength, PetalWidth}

// IrisSpecies is the category order of the species column.
var IrisSpecies = []string{"setosa", "versicolor", "virginica"}

// LoadIris parses the bundled Iris dataset.
func LoadIris() (*Frame, error) {
	return Parse(bytes.NewReader(irisCSV))
}

// Parse reads Iris-shaped CSV. Empty numeric cells become NaN.
func Parse(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(irisHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	for i, name := range irisHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != name {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i, header[i], name)
		}
	}

	frame := &Frame{
		Columns:    make([]Column, len(irisColumns)),
		Categories: append([]string(nil), IrisSpecies...),
	}
	for i, name := range irisColumns {
		frame.Columns[i] = Column{Name: name}
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		for i := range irisColumns {
			v, err := parseCell(record[i])
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d column %q: %w", line, irisColumns[i], err)
			}
			frame.Columns[i].Values = append(frame.Columns[i].Values, v)
		}
		frame.Species = append(frame.Species, strings.TrimSpace(record[len(irisColumns)]))
	}

	if err := frame.validate(); err != nil {
		return nil, err
	}
	return frame, nil
}

func parseCell(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(raw, 64)
}
