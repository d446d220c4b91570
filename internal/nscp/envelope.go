package nscp

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gocbeam/internal/beam"
)

// Outcome is the analysis of one factored combination.
type Outcome struct {
	Combination LoadCombination
	Result      *beam.Result
	MaxMoment   float64 // largest absolute bending moment along the beam
}

// Governing pairs a value with the combination producing it.
type Governing struct {
	Value       float64
	Combination LoadCombination
}

// EnvelopeResult collects the outcome of every combination and the
// governing values across them.
type EnvelopeResult struct {
	Outcomes  []Outcome
	Reactions []Governing // per node, largest reaction
	Moment    Governing   // largest absolute moment
}

// Envelope factors the typed loads with every combination, analyzes each
// factored request and records the governing reactions and moment. The
// Loads of req are replaced by the factored loads. The maximum moment of
// each combination is searched over the given number of evenly spaced
// stations plus both sides of every support and load.
func Envelope(req beam.Request, loads []TypedLoad, combos []LoadCombination, stations int, opts ...beam.Option) (*EnvelopeResult, error) {
	if len(combos) == 0 {
		return nil, fmt.Errorf("%w: no load combinations", beam.ErrInvalidRequest)
	}

	env := &EnvelopeResult{}
	for _, combo := range combos {
		req.Loads = combo.Factor(loads)

		res, err := beam.Analyze(req, opts...)
		if err != nil {
			return nil, fmt.Errorf("combination %s (%s): %w", combo.ID, combo.Description, err)
		}

		out := Outcome{
			Combination: combo,
			Result:      res,
			MaxMoment:   beam.MaxAbsMoment(res.InternalForces(stations)),
		}
		env.Outcomes = append(env.Outcomes, out)

		if env.Reactions == nil {
			env.Reactions = make([]Governing, res.Nodes())
			for i := range env.Reactions {
				env.Reactions[i] = Governing{Value: math.Inf(-1)}
			}
		}
		for i, r := range beam.Floats(res.Reactions) {
			if r > env.Reactions[i].Value {
				env.Reactions[i] = Governing{Value: r, Combination: combo}
			}
		}
		if out.MaxMoment > env.Moment.Value || env.Moment.Combination.ID == "" {
			env.Moment = Governing{Value: out.MaxMoment, Combination: combo}
		}
	}

	return env, nil
}
