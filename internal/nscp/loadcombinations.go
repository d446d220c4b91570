package nscp

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gocbeam/internal/beam"
)

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for common beam design scenarios
// These are the most frequently used combinations for gravity loads
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LoadType is the NSCP category of an unfactored load.
type LoadType string

const (
	Dead       LoadType = "D"
	Live       LoadType = "L"
	Roof       LoadType = "Lr"
	Wind       LoadType = "W"
	Earthquake LoadType = "E"
	Rain       LoadType = "R"
)

// ParseLoadType accepts the NSCP symbol of a load type, case-insensitive.
func ParseLoadType(s string) (LoadType, error) {
	for _, t := range []LoadType{Dead, Live, Roof, Wind, Earthquake, Rain} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown load type %q (want D, L, Lr, W, E or R)", s)
}

// TypedLoad is an unfactored point load of a given type.
type TypedLoad struct {
	Type      LoadType `json:"type"`
	Magnitude float64  `json:"magnitude"`
	Position  float64  `json:"position"`
}

// FactorFor returns the combination's factor for a load type
func (lc LoadCombination) FactorFor(t LoadType) float64 {
	switch t {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	}
	return 0
}

// Factor applies the combination to typed loads. Loads at the same position
// (after rounding) are summed into one point load. Loads whose factor is
// zero are dropped. The result is sorted by position.
func (lc LoadCombination) Factor(loads []TypedLoad) []beam.PointLoad {
	var out []beam.PointLoad
	index := map[float64]int{}

	for _, l := range loads {
		f := lc.FactorFor(l.Type)
		if f == 0 {
			continue
		}
		x := beam.Round(l.Position)
		if i, ok := index[x]; ok {
			out[i].Magnitude = beam.Round(out[i].Magnitude + f*l.Magnitude)
			continue
		}
		index[x] = len(out)
		out = append(out, beam.PointLoad{Magnitude: beam.Round(f * l.Magnitude), Position: x})
	}

	return beam.SortLoads(out)
}

// ParseTypedLoad parses "T:P@x", for example "D:10@1.5".
func ParseTypedLoad(s string) (TypedLoad, error) {
	typ, rest, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TypedLoad{}, fmt.Errorf("load %q: want T:P@x", s)
	}
	lt, err := ParseLoadType(strings.TrimSpace(typ))
	if err != nil {
		return TypedLoad{}, err
	}
	p, err := beam.ParsePointLoad(rest)
	if err != nil {
		return TypedLoad{}, err
	}
	return TypedLoad{Type: lt, Magnitude: p.Magnitude, Position: p.Position}, nil
}
