package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the name of the overview sheet of a results workbook.
const SummarySheet = "Summary"

// Outcome is the analysis of one Case. Result is nil when Err is set.
type Outcome struct {
	Case      Case
	Result    *beam.Result
	MaxMoment float64
	Err       error
}

// Solve analyzes every case that parsed, recording failures per case.
func Solve(cases []Case, stations int, opts ...beam.Option) []Outcome {
	out := make([]Outcome, len(cases))
	for i, c := range cases {
		out[i].Case = c
		if c.Err != nil {
			out[i].Err = c.Err
			continue
		}
		res, err := beam.Analyze(c.Request, opts...)
		if err != nil {
			out[i].Err = err
			continue
		}
		out[i].Result = res
		out[i].MaxMoment = beam.MaxAbsMoment(res.InternalForces(stations))
	}
	return out
}

// SaveResults writes the results workbook to path.
func SaveResults(path string, outcomes []Outcome) error {
	f, err := build(outcomes)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// WriteResults writes the results workbook to w.
func WriteResults(w io.Writer, outcomes []Outcome) error {
	f, err := build(outcomes)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func build(outcomes []Outcome) (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(SummarySheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := setRow(f, SummarySheet, 1, "name", "status", "max |M|", "sum R", "error"); err != nil {
		return nil, err
	}

	used := map[string]bool{strings.ToLower(SummarySheet): true}
	for i, o := range outcomes {
		row := i + 2
		if o.Err != nil {
			if err := setRow(f, SummarySheet, row, o.Case.Name, "error", "", "", o.Err.Error()); err != nil {
				return nil, err
			}
			continue
		}

		var sum float64
		for _, r := range beam.Floats(o.Result.Reactions) {
			sum += r
		}
		if err := setRow(f, SummarySheet, row, o.Case.Name, "ok", o.MaxMoment, beam.Round(sum), ""); err != nil {
			return nil, err
		}

		name := sheetName(o.Case.Name, used)
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		if err := writeCase(f, name, o.Result); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeCase(f *excelize.File, sheet string, res *beam.Result) error {
	row := 1
	next := func(values ...interface{}) error {
		err := setRow(f, sheet, row, values...)
		row++
		return err
	}

	if err := next("segment", "length"); err != nil {
		return err
	}
	for i, s := range res.Segments {
		if err := next(i+1, s); err != nil {
			return err
		}
	}

	row++
	if err := next("node", "x", "rotation", "reaction"); err != nil {
		return err
	}
	for k := 0; k < res.Nodes(); k++ {
		if err := next(k+1, res.Boundaries[k], res.Rotations.AtVec(k), res.Reactions.AtVec(k)); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, ref, &values)
}

// sheetName makes a valid worksheet name of at most 31 characters that is
// not in used. Keys of used are lower case, sheet names are case-insensitive.
func sheetName(name string, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, name)
	clean = strings.Trim(clean, "'")
	if clean == "" {
		clean = "Case"
	}

	base := []rune(clean)
	if len(base) > 31 {
		base = base[:31]
	}
	candidate := string(base)
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		b := base
		if len(b)+len(suffix) > 31 {
			b = b[:31-len(suffix)]
		}
		candidate = string(b) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
