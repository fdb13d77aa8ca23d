// Package entmin searches for the two-mode input that minimizes the
// entanglement a beamsplitter generates. One input state is held fixed; the
// amplitude vector of the second mode is optimized by gradient ascent so
// that the reduced state on one output port has maximal purity while staying
// centered at zero phase-space displacement.
package entmin

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/photonlab/entmin/entmin/cmat"
	"github.com/photonlab/entmin/entmin/fock"
)

var (
	DefaultPenaltyStrength = 10.0
	DefaultIters           = 1201
	DefaultLearnRate       = 0.01
)

// traceDriftTol bounds how far Tr(ρ) may wander from 1 before the run is
// flagged as numerically suspect.
const traceDriftTol = 1e-6

// An Opts packages together the arguments for an optimization run. Fixed
// must always be supplied; the remaining fields have reasonable defaults.
type Opts struct {
	// Cutoff is the Fock-basis truncation dimension. Must be >= 1.
	Cutoff int

	// Theta is the beamsplitter mixing angle (phase held at 0).
	Theta float64

	// Fixed is the pre-normalized input state of mode A. Must have length
	// Cutoff and finite entries.
	Fixed []complex128

	// Initial is the starting guess for the variational mode B state. It
	// must be pre-normalized but need not be centered. If nil, a random
	// normalized state is drawn from Rand.
	Initial []complex128

	// PenaltyStrength weighs the zero-displacement penalty against purity
	// gain. Defaults to DefaultPenaltyStrength.
	PenaltyStrength float64

	// Iters is the fixed iteration budget. There is no convergence test and
	// no early stopping; callers judge convergence from the returned trace.
	// Defaults to DefaultIters.
	Iters int

	// LearnRate is the Adam base step size. Defaults to DefaultLearnRate.
	LearnRate float64

	// Rand supplies randomness for the initial guess when Initial is nil.
	Rand *rand.Rand

	// Logger receives non-fatal numeric-health warnings. Nil disables
	// logging.
	Logger *zerolog.Logger
}

// A Result packages together the outcome of an optimization run.
type Result struct {
	// State is the converged variational amplitude vector, normalized.
	State []complex128

	// FinalNorm is the norm of the raw converged vector before
	// normalization. Parameters are never renormalized between steps, so
	// this exposes how far the norm drifted during the run.
	FinalNorm float64

	// Trace holds one cost value per iteration, evaluated before that
	// iteration's parameter update.
	Trace []float64

	// Cost is the objective evaluated at the converged, normalized state.
	Cost float64

	// Rho is the reduced density matrix of mode B at the optimum.
	Rho *cmat.Dense

	// MeanPhotons and Squeezing are the diagnostics of the converged state:
	// n̄ = Re⟨φ|n|φ⟩ and r = asinh(√n̄).
	MeanPhotons float64
	Squeezing   float64
}

func (o *Opts) validate() error {
	if o.Cutoff < 1 {
		return fmt.Errorf("truncation dimension %d < 1", o.Cutoff)
	}
	if err := checkState("fixed", o.Fixed, o.Cutoff); err != nil {
		return err
	}
	if o.Initial != nil {
		if err := checkState("initial", o.Initial, o.Cutoff); err != nil {
			return err
		}
	} else if o.Rand == nil {
		return fmt.Errorf("must provide Initial or Rand")
	}
	if o.PenaltyStrength < 0 {
		return fmt.Errorf("penalty strength %f < 0", o.PenaltyStrength)
	}
	if o.Iters < 0 {
		return fmt.Errorf("iteration count %d < 0", o.Iters)
	}
	return nil
}

func checkState(name string, psi []complex128, cutoff int) error {
	if len(psi) != cutoff {
		return fmt.Errorf("%s state has length %d, want cutoff %d", name, len(psi), cutoff)
	}
	if !cmat.VecIsFinite(psi) {
		return fmt.Errorf("%s state contains non-finite entries", name)
	}
	return nil
}

// withDefaults returns a copy of o with zero-valued tuning fields replaced
// by their defaults.
func (o Opts) withDefaults() Opts {
	if o.PenaltyStrength == 0 {
		o.PenaltyStrength = DefaultPenaltyStrength
	}
	if o.Iters == 0 {
		o.Iters = DefaultIters
	}
	if o.LearnRate == 0 {
		o.LearnRate = DefaultLearnRate
	}
	return o
}

// buildCostFn assembles the immutable per-run context: the fixed input is
// recentered and the beamsplitter and quadrature operators are built. The
// displacement and beamsplitter exponentials are dense and O(n^3), but run
// only here, never inside the loop, and the result is safe to share
// read-only across concurrent runs.
func (o Opts) buildCostFn() *costFn {
	n := o.Cutoff
	return newCostFn(n, o.Theta, o.PenaltyStrength, fock.Recenter(o.Fixed), fock.QuadX(n), fock.QuadP(n))
}

// Optimize runs a full variational search, in accordance with opts, and
// returns the converged state together with its cost trace and diagnostics.
// Construction-time errors are returned before any iteration runs;
// per-iteration numerical anomalies are logged and never abort the loop.
func Optimize(opts Opts) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	o := opts.withDefaults()
	return o.optimize(o.buildCostFn()), nil
}

// optimize runs the ascent loop for already-validated, default-filled
// options against a prebuilt cost context.
func (o Opts) optimize(cost *costFn) Result {
	n := o.Cutoff
	iters := o.Iters
	rate := o.LearnRate
	logger := zerolog.Nop()
	if o.Logger != nil {
		logger = *o.Logger
	}

	initial := o.Initial
	if initial == nil {
		initial = fock.Random(n, o.Rand)
	}
	phi := fock.Recenter(initial)
	state := NewOptimizerState(splitComplex(phi))

	trace := make([]float64, 0, iters)
	grad := make([]float64, 2*n)
	fdSettings := &fd.Settings{Formula: fd.Central}
	var warnedNaN, warnedDrift bool
	for i := 0; i < iters; i++ {
		rho := cost.reduced(state.Params)
		c := cost.costOf(rho)
		trace = append(trace, c)

		if math.IsNaN(c) && !warnedNaN {
			logger.Warn().Int("iter", i).Msg("cost became NaN; continuing to iteration budget")
			warnedNaN = true
		}
		if drift := math.Abs(real(cmat.Trace(rho)) - 1); drift > traceDriftTol && !warnedDrift {
			logger.Warn().Int("iter", i).Float64("drift", drift).
				Msg("reduced state trace drifting from 1")
			warnedDrift = true
		}

		fd.Gradient(grad, cost.eval, state.Params, fdSettings)
		state.Ascend(grad, rate)
	}

	raw := joinComplex(state.Params)
	final := fock.Normalize(raw)
	rho := ReducedB(cost.u, cost.psi, final)
	nbar := MeanPhotons(final)
	return Result{
		State:       final,
		FinalNorm:   cmat.Norm(raw),
		Trace:       trace,
		Cost:        cost.costOf(rho),
		Rho:         rho,
		MeanPhotons: nbar,
		Squeezing:   Squeezing(nbar),
	}
}
