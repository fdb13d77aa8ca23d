package fock

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/photonlab/entmin/entmin/cmat"
)

// Vacuum returns the n-dimensional vacuum state |0⟩.
func Vacuum(n int) []complex128 {
	return Basis(n, 0)
}

// Basis returns the k-photon number state |k⟩ on an n-dimensional basis.
func Basis(n, k int) []complex128 {
	if k < 0 || k >= n {
		panic(fmt.Sprintf("fock: basis state %d outside truncation %d", k, n))
	}
	psi := make([]complex128, n)
	psi[k] = 1
	return psi
}

// Superposition01 returns (|0⟩+|1⟩)/√2 on an n-dimensional basis.
func Superposition01(n int) []complex128 {
	if n < 2 {
		panic(fmt.Sprintf("fock: superposition needs truncation >= 2, got %d", n))
	}
	psi := make([]complex128, n)
	psi[0] = complex(1/math.Sqrt2, 0)
	psi[1] = complex(1/math.Sqrt2, 0)
	return psi
}

// Coherent returns the truncated coherent state |α⟩, renormalized over the
// n-dimensional basis.
func Coherent(n int, alpha complex128) []complex128 {
	psi := make([]complex128, n)
	psi[0] = 1
	for k := 1; k < n; k++ {
		psi[k] = psi[k-1] * alpha / complex(math.Sqrt(float64(k)), 0)
	}
	return Normalize(psi)
}

// SqueezedVacuum returns the truncated zero-mean squeezed vacuum state with
// squeezing parameter r, renormalized over the n-dimensional basis. Only
// even number states carry amplitude.
func SqueezedVacuum(n int, r float64) []complex128 {
	psi := make([]complex128, n)
	psi[0] = 1
	t := -math.Tanh(r)
	for m := 1; 2*m < n; m++ {
		// c_{2m} = c_{2(m-1)} * (-tanh r) * sqrt((2m-1)·2m) / (2m)
		k := float64(2 * m)
		psi[2*m] = psi[2*(m-1)] * complex(t*math.Sqrt((k-1)*k)/k, 0)
	}
	return Normalize(psi)
}

// Random returns a normalized state with independent Gaussian real and
// imaginary amplitude components drawn from rng.
func Random(n int, rng *rand.Rand) []complex128 {
	psi := make([]complex128, n)
	for k := range psi {
		psi[k] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return Normalize(psi)
}

// Normalize returns a unit-norm copy of psi.
func Normalize(psi []complex128) []complex128 {
	out := make([]complex128, len(psi))
	copy(out, psi)
	if norm := cmat.Norm(out); norm > 0 {
		cmat.ScaleVec(complex(1/norm, 0), out)
	}
	return out
}

// Probabilities returns the squared-magnitude amplitudes of psi, the input
// for a number-basis probability bar chart.
func Probabilities(psi []complex128) []float64 {
	probs := make([]float64, len(psi))
	for k, a := range psi {
		probs[k] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}
