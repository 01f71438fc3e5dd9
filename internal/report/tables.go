package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/danmuck/labkit/internal/dataset"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func render(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func headTable(frame *dataset.Frame, n int) string {
	headers := append([]string{""}, frame.ColumnNames()...)
	return render(headers, frame.Head(n))
}

func dtypeTable(frame *dataset.Frame) string {
	types := frame.DTypes()
	rows := make([][]string, 0, len(types))
	for _, dt := range types {
		rows = append(rows, []string{dt.Column, dt.Type})
	}
	return render([]string{"column", "dtype"}, rows)
}

func missingTable(frame *dataset.Frame) string {
	counts := frame.MissingCounts()
	names := frame.ColumnNames()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, strconv.Itoa(counts[name])})
	}
	return render([]string{"column", "missing"}, rows)
}

// describeTable lays statistics out as rows and columns as columns, like describe().
func describeTable(summaries []dataset.Summary) string {
	headers := []string{""}
	for _, s := range summaries {
		headers = append(headers, s.Name)
	}
	stats := []struct {
		label string
		pick  func(dataset.Summary) string
	}{
		{"count", func(s dataset.Summary) string { return fmt.Sprintf("%d", s.Count) }},
		{"mean", func(s dataset.Summary) string { return num(s.Mean) }},
		{"std", func(s dataset.Summary) string { return num(s.Std) }},
		{"min", func(s dataset.Summary) string { return num(s.Min) }},
		{"25%", func(s dataset.Summary) string { return num(s.Q25) }},
		{"50%", func(s dataset.Summary) string { return num(s.Q50) }},
		{"75%", func(s dataset.Summary) string { return num(s.Q75) }},
		{"max", func(s dataset.Summary) string { return num(s.Max) }},
	}
	rows := make([][]string, 0, len(stats))
	for _, st := range stats {
		row := []string{st.label}
		for _, s := range summaries {
			row = append(row, st.pick(s))
		}
		rows = append(rows, row)
	}
	return render(headers, rows)
}

func groupTable(frame *dataset.Frame) string {
	headers := []string{dataset.SpeciesColumn}
	for _, c := range frame.Columns {
		headers = append(headers, c.Name)
	}
	groups := frame.GroupMean()
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		row := []string{g.Species}
		for _, m := range g.Means {
			row = append(row, num(m))
		}
		rows = append(rows, row)
	}
	return render(headers, rows)
}
