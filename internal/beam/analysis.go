// Package beam computes rotations and support reactions of a straight beam
// on multiple supports under point loads with the direct stiffness method.
//
// The pipeline is sequential: segment the beam at its supports, build one
// 4x4 element matrix per segment, assemble the global stiffness matrix,
// assemble the fixed-end load vector, reduce both for the zero-displacement
// boundary conditions, solve for rotations and finally compute reactions.
// Every intermediate artifact is returned on Result.
package beam

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/alexiusacademia/gocbeam/internal/linsolve"
	"gonum.org/v1/gonum/mat"
)

// Request is the validated input of one analysis.
type Request struct {
	Length   float64     `json:"length"`   // total beam length L
	Supports []float64   `json:"supports"` // interior support positions, strictly inside (0, L)
	Loads    []PointLoad `json:"loads"`
	E        float64     `json:"e"` // modulus of elasticity
	I        float64     `json:"i"` // second moment of area
}

// Validate checks the preconditions of the pipeline.
func (r Request) Validate() error {
	if !finite(r.Length) || r.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %g", ErrInvalidRequest, r.Length)
	}
	if !finite(r.E) || r.E <= 0 {
		return fmt.Errorf("%w: E must be positive, got %g", ErrInvalidRequest, r.E)
	}
	if !finite(r.I) || r.I <= 0 {
		return fmt.Errorf("%w: I must be positive, got %g", ErrInvalidRequest, r.I)
	}

	supports := sortedCopy(r.Supports)
	prev := 0.0
	for _, s := range supports {
		if !finite(s) || s <= 0 || s >= r.Length {
			return fmt.Errorf("%w: support at %g must lie strictly inside (0, %g)", ErrInvalidRequest, s, r.Length)
		}
		if Round(s-prev) <= 0 {
			return fmt.Errorf("%w: support at %g is within %g of the node at %g", ErrInvalidRequest, s, Tolerance, prev)
		}
		prev = s
	}
	if len(supports) > 0 && Round(r.Length-prev) <= 0 {
		return fmt.Errorf("%w: support at %g is within %g of the beam end", ErrInvalidRequest, prev, Tolerance)
	}

	for i, p := range r.Loads {
		if !finite(p.Magnitude) || !finite(p.Position) {
			return fmt.Errorf("%w: load %d is not finite", ErrInvalidRequest, i+1)
		}
		if p.Position < 0 || p.Position > r.Length {
			return fmt.Errorf("%w: load %d at %g lies outside [0, %g]", ErrInvalidRequest, i+1, p.Position, r.Length)
		}
	}

	return nil
}

// Result holds every artifact produced by Analyze.
type Result struct {
	Request    Request      // the request with supports and loads sorted
	Segments   []float64    // element lengths, left to right
	Boundaries []float64    // node positions [0, supports..., L]
	Elements   []*mat.Dense // 4x4 element matrices, unit EI
	Global     *mat.Dense   // assembled global stiffness matrix, unit EI
	FixedEnds  []FixedEnd   // one entry per load, in ascending position
	LoadVector *mat.VecDense

	Rotation ReducedSystem // square system for the rotations
	Reaction ReducedSystem // rectangular system for the reactions

	Rotations *mat.VecDense // one rotation per node
	Reactions *mat.VecDense // one reaction per node, rounded to Precision
}

// Nodes returns the number of nodes (supports plus both ends).
func (r *Result) Nodes() int {
	return len(r.Boundaries)
}

// Option configures Analyze.
type Option func(*options)

type options struct {
	solver    Solver
	placement Placement
	recovery  Recovery
	logger    *slog.Logger
}

// WithSolver selects the linear solver for the rotation system.
func WithSolver(s Solver) Option {
	return func(o *options) {
		if s != nil {
			o.solver = s
		}
	}
}

// WithPlacement selects how loads exactly on interior supports are handled.
func WithPlacement(p Placement) Option {
	return func(o *options) { o.placement = p }
}

// WithRecovery selects how reactions are recovered from the rotations.
func WithRecovery(r Recovery) Option {
	return func(o *options) { o.recovery = r }
}

// WithLogger sets the logger that receives debug output of each stage.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Analyze validates req and runs the stiffness pipeline.
func Analyze(req Request, opts ...Option) (*Result, error) {
	o := &options{
		solver:    linsolve.Dense{},
		placement: PlacementStrict,
		recovery:  RecoveryReference,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.Supports = sortedCopy(req.Supports)
	req.Loads = SortLoads(req.Loads)
	res := &Result{Request: req}

	segments, err := Segments(req.Length, req.Supports)
	if err != nil {
		return nil, err
	}
	res.Segments = segments
	res.Boundaries = Boundaries(req.Length, req.Supports)
	o.logger.Debug("segments built", "count", len(segments), "lengths", segments)

	res.Elements = ElementStiffnesses(segments)
	res.Global, err = Assemble(res.Elements)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("global matrix assembled", "size", GlobalSize(len(segments)))

	res.FixedEnds, res.LoadVector, err = AssembleLoads(res.Boundaries, segments, req.Loads, o.placement)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("load vector assembled", "loads", len(res.FixedEnds), "placement", o.placement)

	res.Rotation, err = ReduceRotation(res.Global, res.LoadVector, req.E, req.I)
	if err != nil {
		return nil, err
	}
	res.Reaction, err = ReduceReaction(res.Global, res.LoadVector, req.E, req.I)
	if err != nil {
		return nil, err
	}

	res.Rotations, err = SolveRotations(o.solver, res.Rotation)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("rotations solved", "count", res.Rotations.Len())

	if o.recovery == RecoveryEquilibrium {
		res.Reactions, err = EquilibriumReactions(res.Reaction, res.Rotations)
	} else {
		res.Reactions, err = Reactions(res.Reaction, res.Rotations)
	}
	if err != nil {
		return nil, err
	}
	o.logger.Debug("reactions computed", "count", res.Reactions.Len(), "recovery", o.recovery, "residual", res.Equilibrium())

	return res, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func sortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}
