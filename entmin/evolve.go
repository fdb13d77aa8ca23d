package entmin

import (
	"math/cmplx"

	"github.com/photonlab/entmin/entmin/cmat"
	"github.com/photonlab/entmin/entmin/fock"
)

// Tensor forms the joint two-mode state psi⊗phi. Mode A (psi) is the left
// factor: joint index (i, j) maps to i*n + j.
func Tensor(psi, phi []complex128) []complex128 {
	return cmat.KronVec(psi, phi)
}

// Beamsplitter returns the n²xn² two-mode beamsplitter unitary of mixing
// angle theta (phase 0), exp(θ·(a₁†a₂ - a₁a₂†)). It is built once per run
// and reused every iteration; the exponential dominates setup cost.
func Beamsplitter(n int, theta float64) *cmat.Dense {
	a := fock.Lower(n)
	ad := fock.Raise(n)
	g := cmat.Kron(ad, a)
	g.AddScaled(-1, cmat.Kron(a, ad))
	g.Scale(complex(theta, 0))
	return cmat.Expm(g)
}

// PartialTraceA reduces the joint pure state to the density matrix of mode
// B by tracing out mode A: ρ[m,n] = Σ_k Ψ[kN+m]·conj(Ψ[kN+n]).
func PartialTraceA(joint []complex128, n int) *cmat.Dense {
	rho := cmat.Zeros(n, n)
	for k := 0; k < n; k++ {
		row := joint[k*n : (k+1)*n]
		for m := 0; m < n; m++ {
			if row[m] == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				rho.Set(m, j, rho.At(m, j)+row[m]*cmplx.Conj(row[j]))
			}
		}
	}
	return rho
}

// PartialTraceB reduces the joint pure state to the density matrix of mode
// A by tracing out mode B: ρ[m,n] = Σ_k Ψ[mN+k]·conj(Ψ[nN+k]).
func PartialTraceB(joint []complex128, n int) *cmat.Dense {
	rho := cmat.Zeros(n, n)
	for m := 0; m < n; m++ {
		rowM := joint[m*n : (m+1)*n]
		for j := 0; j < n; j++ {
			rowJ := joint[j*n : (j+1)*n]
			var s complex128
			for k := 0; k < n; k++ {
				s += rowM[k] * cmplx.Conj(rowJ[k])
			}
			rho.Set(m, j, s)
		}
	}
	return rho
}

// ReducedB evolves psi⊗phi through the beamsplitter u and returns the
// reduced density matrix of mode B.
func ReducedB(u *cmat.Dense, psi, phi []complex128) *cmat.Dense {
	out := cmat.MulVec(u, Tensor(psi, phi))
	return PartialTraceA(out, len(phi))
}
