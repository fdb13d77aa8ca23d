package entmin

import (
	"math"

	"github.com/photonlab/entmin/entmin/cmat"
	"github.com/photonlab/entmin/entmin/fock"
)

// MeanPhotons returns the mean photon number n̄ = Re⟨φ|n|φ⟩. The caller is
// expected to pass a normalized state.
func MeanPhotons(phi []complex128) float64 {
	n := fock.Number(len(phi))
	return real(cmat.Dotc(phi, cmat.MulVec(n, phi)))
}

// Squeezing returns the equivalent squeezing parameter r = asinh(√n̄). The
// estimate assumes the state is approximately a zero-mean squeezed vacuum,
// for which n̄ = sinh²r holds exactly; it is not meaningful for arbitrary
// states.
func Squeezing(meanPhotons float64) float64 {
	return math.Asinh(math.Sqrt(meanPhotons))
}

// Purity returns Tr(ρ²)/Tr(ρ)², which is 1 for a pure state and 1/n for the
// maximally mixed state on an n-dimensional space.
func Purity(rho *cmat.Dense) float64 {
	tr := real(cmat.Trace(rho))
	return real(cmat.MulTrace(rho, rho)) / (tr * tr)
}
