// Package cmat provides dense complex matrices and vectors of the modest
// sizes that show up when working with truncated bosonic Hilbert spaces.
// Matrices are stored row-major; all products are delegated to cblas128.
package cmat

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// A Dense is a row-major dense complex matrix.
type Dense struct {
	rows, cols int
	data       []complex128
}

// NewDense constructs a rows x cols matrix backed by data, which is used
// directly if non-nil and must then have length rows*cols. A nil data slice
// allocates a zero matrix.
func NewDense(rows, cols int, data []complex128) *Dense {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("cmat: non-positive dimensions %dx%d", rows, cols))
	}
	if data == nil {
		data = make([]complex128, rows*cols)
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("cmat: backing slice of len %d for %dx%d matrix", len(data), rows, cols))
	}
	return &Dense{rows: rows, cols: cols, data: data}
}

// Zeros returns a rows x cols zero matrix.
func Zeros(rows, cols int) *Dense {
	return NewDense(rows, cols, nil)
}

// Eye returns the n x n identity.
func Eye(n int) *Dense {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Dims returns the row and column counts of m.
func (m *Dense) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) complex128 { return m.data[i*m.cols+j] }

// Set assigns the element at row i, column j.
func (m *Dense) Set(i, j int, v complex128) { m.data[i*m.cols+j] = v }

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: data}
}

// Scale multiplies every element of m by alpha in place.
func (m *Dense) Scale(alpha complex128) {
	cblas128.Scal(alpha, vec(m.data))
}

// AddScaled accumulates m += alpha*a in place.
func (m *Dense) AddScaled(alpha complex128, a *Dense) {
	if m.rows != a.rows || m.cols != a.cols {
		panic(fmt.Sprintf("cmat: adding %dx%d into %dx%d", a.rows, a.cols, m.rows, m.cols))
	}
	cblas128.Axpy(alpha, vec(a.data), vec(m.data))
}

// Dagger returns the conjugate transpose of m.
func (m *Dense) Dagger() *Dense {
	d := Zeros(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			d.data[j*d.cols+i] = cmplx.Conj(m.data[i*m.cols+j])
		}
	}
	return d
}

func (m *Dense) general() cblas128.General {
	return cblas128.General{Rows: m.rows, Cols: m.cols, Stride: m.cols, Data: m.data}
}

func vec(data []complex128) cblas128.Vector {
	return cblas128.Vector{N: len(data), Inc: 1, Data: data}
}

// Mul returns the matrix product a*b.
func Mul(a, b *Dense) *Dense {
	if a.cols != b.rows {
		panic(fmt.Sprintf("cmat: multiplying %dx%d by %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	c := Zeros(a.rows, b.cols)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.general(), b.general(), 0, c.general())
	return c
}

// MulVec returns the matrix-vector product m*x.
func MulVec(m *Dense, x []complex128) []complex128 {
	if m.cols != len(x) {
		panic(fmt.Sprintf("cmat: multiplying %dx%d matrix into %d-dim vector", m.rows, m.cols, len(x)))
	}
	y := make([]complex128, m.rows)
	cblas128.Gemv(blas.NoTrans, 1, m.general(), vec(x), 0, vec(y))
	return y
}

// Kron returns the Kronecker product a⊗b, with a's indices varying slowest.
func Kron(a, b *Dense) *Dense {
	k := Zeros(a.rows*b.rows, a.cols*b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			aij := a.data[i*a.cols+j]
			if aij == 0 {
				continue
			}
			for p := 0; p < b.rows; p++ {
				row := (i*b.rows + p) * k.cols
				boff := p * b.cols
				coff := j * b.cols
				for q := 0; q < b.cols; q++ {
					k.data[row+coff+q] = aij * b.data[boff+q]
				}
			}
		}
	}
	return k
}

// Trace returns the trace of the square matrix m.
func Trace(m *Dense) complex128 {
	if m.rows != m.cols {
		panic(fmt.Sprintf("cmat: trace of %dx%d matrix", m.rows, m.cols))
	}
	var t complex128
	for i := 0; i < m.rows; i++ {
		t += m.data[i*m.cols+i]
	}
	return t
}

// MulTrace returns Tr(a*b) without forming the product, in O(n^2).
func MulTrace(a, b *Dense) complex128 {
	if a.cols != b.rows || a.rows != b.cols {
		panic(fmt.Sprintf("cmat: trace of %dx%d by %dx%d product", a.rows, a.cols, b.rows, b.cols))
	}
	var t complex128
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			t += a.data[i*a.cols+j] * b.data[j*b.cols+i]
		}
	}
	return t
}

// IsFinite reports whether every element of m is finite.
func (m *Dense) IsFinite() bool { return VecIsFinite(m.data) }

// oneNorm returns the maximum absolute column sum of m.
func oneNorm(m *Dense) float64 {
	var max float64
	for j := 0; j < m.cols; j++ {
		var s float64
		for i := 0; i < m.rows; i++ {
			s += cmplx.Abs(m.data[i*m.cols+j])
		}
		if s > max {
			max = s
		}
	}
	return max
}

// expmTol bounds the 1-norm of the final Taylor term.
const expmTol = 1e-16

// Expm returns the matrix exponential of the square matrix m, computed by
// scaling-and-squaring with a Taylor expansion of the scaled matrix. The
// matrices this package targets are small enough that the O(n^3) terms are
// acceptable as one-time setup cost.
func Expm(m *Dense) *Dense {
	if m.rows != m.cols {
		panic(fmt.Sprintf("cmat: exponential of %dx%d matrix", m.rows, m.cols))
	}
	var s int
	if norm := oneNorm(m); norm > 0.5 {
		s = int(math.Ceil(math.Log2(norm / 0.5)))
	}
	scaled := m.Clone()
	scaled.Scale(complex(math.Ldexp(1, -s), 0))

	sum := Eye(m.rows)
	term := Eye(m.rows)
	for k := 1; k <= 64; k++ {
		term = Mul(term, scaled)
		term.Scale(complex(1/float64(k), 0))
		sum.AddScaled(1, term)
		if oneNorm(term) < expmTol {
			break
		}
	}
	for i := 0; i < s; i++ {
		sum = Mul(sum, sum)
	}
	return sum
}
