package cmat

import (
	"math"

	"gonum.org/v1/gonum/blas/cblas128"
)

// Dotc returns the inner product conj(x)·y.
func Dotc(x, y []complex128) complex128 {
	return cblas128.Dotc(vec(x), vec(y))
}

// Norm returns the Euclidean norm of x.
func Norm(x []complex128) float64 {
	return cblas128.Nrm2(vec(x))
}

// ScaleVec multiplies every element of x by alpha in place.
func ScaleVec(alpha complex128, x []complex128) {
	cblas128.Scal(alpha, vec(x))
}

// KronVec returns the tensor product x⊗y, with x's index varying slowest:
// element (i, j) lands at i*len(y)+j.
func KronVec(x, y []complex128) []complex128 {
	k := make([]complex128, len(x)*len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		off := i * len(y)
		for j, yj := range y {
			k[off+j] = xi * yj
		}
	}
	return k
}

// VecIsFinite reports whether every element of x has finite real and
// imaginary parts.
func VecIsFinite(x []complex128) bool {
	for _, v := range x {
		re, im := real(v), imag(v)
		if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
			return false
		}
	}
	return true
}
