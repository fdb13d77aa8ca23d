// Package fock builds the standard single-mode bosonic operators and states
// on a Fock (number) basis truncated to a finite dimension. A state is a
// []complex128 of amplitudes; index k is the k-photon amplitude.
package fock

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/photonlab/entmin/entmin/cmat"
)

// Lower returns the n x n lowering (annihilation) operator a, with
// a[k, k+1] = sqrt(k+1).
func Lower(n int) *cmat.Dense {
	if n < 1 {
		panic(fmt.Sprintf("fock: truncation dimension %d < 1", n))
	}
	a := cmat.Zeros(n, n)
	for k := 0; k < n-1; k++ {
		a.Set(k, k+1, complex(math.Sqrt(float64(k+1)), 0))
	}
	return a
}

// Raise returns the n x n raising (creation) operator, the conjugate
// transpose of Lower(n).
func Raise(n int) *cmat.Dense {
	return Lower(n).Dagger()
}

// Number returns the n x n photon number operator a†a.
func Number(n int) *cmat.Dense {
	m := cmat.Zeros(n, n)
	for k := 0; k < n; k++ {
		m.Set(k, k, complex(float64(k), 0))
	}
	return m
}

// QuadX returns the x quadrature a + a†.
func QuadX(n int) *cmat.Dense {
	x := Lower(n)
	x.AddScaled(1, Raise(n))
	return x
}

// QuadP returns the p quadrature -i(a - a†).
func QuadP(n int) *cmat.Dense {
	p := Lower(n)
	p.AddScaled(-1, Raise(n))
	p.Scale(complex(0, -1))
	return p
}

// MeanAlpha returns the phase-space displacement ⟨ψ|a|ψ⟩ of psi.
func MeanAlpha(psi []complex128) complex128 {
	return cmat.Dotc(psi, cmat.MulVec(Lower(len(psi)), psi))
}

// Displacement returns the unitary displacement operator
// D(α) = exp(α·a† - conj(α)·a) on an n-dimensional truncated basis.
func Displacement(n int, alpha complex128) *cmat.Dense {
	g := Raise(n)
	g.Scale(alpha)
	g.AddScaled(-cmplx.Conj(alpha), Lower(n))
	return cmat.Expm(g)
}

// Recenter shifts psi to zero mean displacement by applying D(-⟨a⟩). The
// returned state re-measures ⟨a⟩ close to zero, bounded by truncation error
// rather than exactly zero.
func Recenter(psi []complex128) []complex128 {
	alpha := MeanAlpha(psi)
	return cmat.MulVec(Displacement(len(psi), -alpha), psi)
}
