package entmin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photonlab/entmin/entmin/fock"
)

func newTestCost(n int, theta, penalty float64, psi []complex128) *costFn {
	return newCostFn(n, theta, penalty, psi, fock.QuadX(n), fock.QuadP(n))
}

func TestSplitJoinComplexRoundTrip(t *testing.T) {
	phi := []complex128{1 + 2i, -0.5, 0.25i}
	require.Equal(t, phi, joinComplex(splitComplex(phi)))
	require.Equal(t, []float64{1, -0.5, 0, 2, 0, 0.25}, splitComplex(phi))
}

func TestCostPureCenteredState(t *testing.T) {
	// θ = 0 leaves the product state unentangled, and the vacuum carries no
	// displacement, so the cost is exactly the purity of a pure state.
	n := 12
	c := newTestCost(n, 0, 10, fock.Vacuum(n))
	got := c.eval(splitComplex(fock.Vacuum(n)))
	assert.InDelta(t, 1, got, 1e-10)
}

func TestCostPenalizesDisplacement(t *testing.T) {
	// A displaced pure state at θ = 0 keeps purity 1 but pays the quadrature
	// penalty: cost = 1 - s·⟨x⟩² - s·⟨p⟩², with ⟨x⟩ = 2·Re α for x = a + a†.
	n := 25
	alpha := 0.5
	c := newTestCost(n, 0, 10, fock.Vacuum(n))
	got := c.eval(splitComplex(fock.Coherent(n, complex(alpha, 0))))
	want := 1 - 10*(2*alpha)*(2*alpha)
	assert.InDelta(t, want, got, 1e-6)
}

func TestCostTraceNormalization(t *testing.T) {
	// Scaling the variational vector must leave the cost unchanged: the
	// objective is normalized by Tr(ρ)², which is what lets the optimizer
	// run without per-step renormalization.
	n := 10
	c := newTestCost(n, math.Pi/4, 10, fock.Superposition01(n))

	phi := fock.SqueezedVacuum(n, 0.2)
	scaled := make([]complex128, n)
	for k, v := range phi {
		scaled[k] = 1.7 * v
	}
	assert.InDelta(t, c.eval(splitComplex(phi)), c.eval(splitComplex(scaled)), 1e-9)
}

func TestCostEntangledFockState(t *testing.T) {
	// A single photon on a 50:50 beamsplitter splits evenly, leaving mode B
	// in the maximally mixed two-level state diag(1/2, 1/2). That state has
	// purity 1/2 and zero mean quadratures, so the cost is exactly 1/2.
	n := 15
	c := newTestCost(n, math.Pi/4, 10, fock.Basis(n, 1))
	got := c.eval(splitComplex(fock.Vacuum(n)))
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestCostBelowOneWhenEntangled(t *testing.T) {
	// A 50:50 beamsplitter entangles |0⟩+|1⟩ with the vacuum, dropping the
	// reduced purity, and the residual displacement pays the penalty on top.
	n := 15
	c := newTestCost(n, math.Pi/4, 10, fock.Superposition01(n))
	assert.Less(t, c.eval(splitComplex(fock.Vacuum(n))), 1.0)
}
