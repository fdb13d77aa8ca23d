package entmin

import (
	"math"
)

// Adam moment-decay and stabilization constants.
const (
	adamBeta1 = 0.9
	adamBeta2 = 0.999
	adamEps   = 1e-8
)

// An OptimizerState holds the full mutable state of one gradient-ascent run:
// the current parameters, the bias-corrected first and second moment
// estimates, and the step counter. It is an explicit value threaded through
// iterations, with no package-level state, so independent runs can proceed
// concurrently and tests stay deterministic.
type OptimizerState struct {
	Params []float64

	m, v []float64
	step int
}

// NewOptimizerState returns optimizer state starting from params, which is
// owned by the state from this point on.
func NewOptimizerState(params []float64) *OptimizerState {
	return &OptimizerState{
		Params: params,
		m:      make([]float64, len(params)),
		v:      make([]float64, len(params)),
	}
}

// Ascend applies one Adam-style ascent step for the given gradient: the
// per-parameter running mean and variance of gradients are updated,
// bias-corrected, and used to form adaptive step sizes.
func (s *OptimizerState) Ascend(grad []float64, rate float64) {
	s.step++
	c1 := 1 - math.Pow(adamBeta1, float64(s.step))
	c2 := 1 - math.Pow(adamBeta2, float64(s.step))
	for i, g := range grad {
		s.m[i] = adamBeta1*s.m[i] + (1-adamBeta1)*g
		s.v[i] = adamBeta2*s.v[i] + (1-adamBeta2)*g*g
		mHat := s.m[i] / c1
		vHat := s.v[i] / c2
		s.Params[i] += rate * mHat / (math.Sqrt(vHat) + adamEps)
	}
}

// Step returns the number of ascent steps taken so far.
func (s *OptimizerState) Step() int { return s.step }
