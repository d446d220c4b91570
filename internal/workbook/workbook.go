// Package workbook reads batches of beam cases from an Excel workbook and
// writes their results back to one.
//
// Input layout, first sheet, header row first:
//
//	name | length | supports | loads | E | I
//
// Supports are separated by ";" ("2;4"), loads are P@x pairs separated by
// ";" ("10@1;20@3"). Empty E or I cells take the defaults given to
// ReadCases.
package workbook

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/xuri/excelize/v2"
)

// Header is the expected first row of an input workbook.
var Header = []string{"name", "length", "supports", "loads", "E", "I"}

// Case is one row of the input workbook. Err is set when the row could not
// be parsed.
type Case struct {
	Row     int
	Name    string
	Request beam.Request
	Err     error
}

// Defaults fill empty E and I cells.
type Defaults struct {
	E float64
	I float64
}

// ReadFile opens path and reads its cases.
func ReadFile(path string, d Defaults) ([]Case, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCases(f, d)
}

// ReadCases reads the cases of a workbook from r.
func ReadCases(r io.Reader, d Defaults) ([]Case, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCases(f, d)
}

func readCases(f *excelize.File, d Defaults) ([]Case, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no cases", sheet)
	}

	var cases []Case
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		c := Case{Row: i + 1, Name: cell(row, 0)}
		if c.Name == "" {
			c.Name = fmt.Sprintf("Case %d", len(cases)+1)
		}
		c.Request, c.Err = parseRow(row, d)
		cases = append(cases, c)
	}
	return cases, nil
}

func parseRow(row []string, d Defaults) (beam.Request, error) {
	req := beam.Request{E: d.E, I: d.I}

	length, err := toFloat(cell(row, 1))
	if err != nil {
		return req, fmt.Errorf("length: %w", err)
	}
	req.Length = length

	if req.Supports, err = ParseSupports(cell(row, 2)); err != nil {
		return req, err
	}
	if req.Loads, err = ParseLoads(cell(row, 3)); err != nil {
		return req, err
	}

	if s := cell(row, 4); s != "" {
		if req.E, err = toFloat(s); err != nil {
			return req, fmt.Errorf("E: %w", err)
		}
	}
	if s := cell(row, 5); s != "" {
		if req.I, err = toFloat(s); err != nil {
			return req, fmt.Errorf("I: %w", err)
		}
	}
	return req, nil
}

// ParseSupports parses a ";" or "," separated list of support positions.
func ParseSupports(s string) ([]float64, error) {
	var out []float64
	for _, part := range split(s) {
		x, err := toFloat(part)
		if err != nil {
			return nil, fmt.Errorf("support %q: %w", part, err)
		}
		out = append(out, x)
	}
	return out, nil
}

// ParseLoads parses a ";" separated list of P@x loads.
func ParseLoads(s string) ([]beam.PointLoad, error) {
	var out []beam.PointLoad
	for _, part := range split(s) {
		p, err := beam.ParsePointLoad(part)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func split(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' })
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
