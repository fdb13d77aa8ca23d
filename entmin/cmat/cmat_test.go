package cmat

import (
	"math"
	"math/cmplx"
	"testing"
)

const tol = 1e-12

func cApprox(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}

func TestCApprox(t *testing.T) {
	tcs := []struct {
		name string
		a, b complex128
		tol  float64
		eout bool
	}{
		{"identical at zero tolerance", 1 + 2i, 1 + 2i, 0, true},
		{"distinct at zero tolerance", 1, 1 + 1e-9i, 0, false},
		{"within tolerance", 1, 1 + 1e-9i, 1e-6, true},
		{"outside tolerance", 1, 2, 1e-6, false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := cApprox(tc.a, tc.b, tc.tol); got != tc.eout {
				t.Errorf("cApprox(%v, %v, %v) == %v, want %v", tc.a, tc.b, tc.tol, got, tc.eout)
			}
		})
	}
}

func matApprox(t *testing.T, got, want *Dense, tol float64) {
	t.Helper()
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		t.Fatalf("got %dx%d matrix, want %dx%d", gr, gc, wr, wc)
	}
	for i := 0; i < gr; i++ {
		for j := 0; j < gc; j++ {
			if !cApprox(got.At(i, j), want.At(i, j), tol) {
				t.Errorf("element (%d,%d) == %v, want %v", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}

func TestMul(t *testing.T) {
	tcs := []struct {
		name    string
		a, b, e *Dense
	}{
		{
			name: "identity",
			a:    Eye(2),
			b:    NewDense(2, 2, []complex128{1, 2i, 3, 4}),
			e:    NewDense(2, 2, []complex128{1, 2i, 3, 4}),
		}, {
			name: "complex entries",
			a:    NewDense(2, 2, []complex128{1, 1i, 0, 2}),
			b:    NewDense(2, 2, []complex128{1, 0, 1i, 1}),
			e:    NewDense(2, 2, []complex128{0, 1i, 2i, 2}),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			matApprox(t, Mul(tc.a, tc.b), tc.e, tol)
		})
	}
}

func TestMulVec(t *testing.T) {
	m := NewDense(2, 3, []complex128{1, 0, 1i, 0, 2, 0})
	got := MulVec(m, []complex128{1, 1, 1})
	want := []complex128{1 + 1i, 2}
	for i := range want {
		if !cApprox(got[i], want[i], tol) {
			t.Errorf("MulVec[%d] == %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDagger(t *testing.T) {
	m := NewDense(2, 3, []complex128{1, 2i, 0, 3, 0, 1 - 1i})
	d := m.Dagger()
	e := NewDense(3, 2, []complex128{1, 3, -2i, 0, 0, 1 + 1i})
	matApprox(t, d, e, 0)
}

func TestKron(t *testing.T) {
	a := NewDense(2, 2, []complex128{1, 2, 3, 4})
	b := NewDense(2, 2, []complex128{0, 1, 1, 0})
	got := Kron(a, b)
	e := NewDense(4, 4, []complex128{
		0, 1, 0, 2,
		1, 0, 2, 0,
		0, 3, 0, 4,
		3, 0, 4, 0,
	})
	matApprox(t, got, e, 0)
}

func TestTrace(t *testing.T) {
	m := NewDense(2, 2, []complex128{1 + 1i, 5, 7, 2 - 3i})
	if got := Trace(m); !cApprox(got, 3-2i, tol) {
		t.Errorf("Trace == %v, want %v", got, 3-2i)
	}
}

func TestMulTraceMatchesProduct(t *testing.T) {
	a := NewDense(3, 3, []complex128{1, 2i, 0, 0, 1, 1 - 1i, 3, 0, 2})
	b := NewDense(3, 3, []complex128{0, 1, 1i, 2, 0, 0, 1, 1, 1})
	if got, want := MulTrace(a, b), Trace(Mul(a, b)); !cApprox(got, want, tol) {
		t.Errorf("MulTrace == %v, want %v", got, want)
	}
}

func TestExpm(t *testing.T) {
	theta := 0.7
	tcs := []struct {
		name string
		in   *Dense
		e    *Dense
	}{
		{
			name: "zero",
			in:   Zeros(2, 2),
			e:    Eye(2),
		}, {
			name: "diagonal",
			in:   NewDense(2, 2, []complex128{1, 0, 0, 2i}),
			e:    NewDense(2, 2, []complex128{cmplx.Exp(1), 0, 0, cmplx.Exp(2i)}),
		}, {
			name: "nilpotent",
			in:   NewDense(2, 2, []complex128{0, 1, 0, 0}),
			e:    NewDense(2, 2, []complex128{1, 1, 0, 1}),
		}, {
			name: "rotation generator",
			in:   NewDense(2, 2, []complex128{0, complex(-theta, 0), complex(theta, 0), 0}),
			e: NewDense(2, 2, []complex128{
				complex(math.Cos(theta), 0), complex(-math.Sin(theta), 0),
				complex(math.Sin(theta), 0), complex(math.Cos(theta), 0),
			}),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			matApprox(t, Expm(tc.in), tc.e, 1e-12)
		})
	}
}

func TestExpmAntiHermitianIsUnitary(t *testing.T) {
	// exp of an anti-Hermitian matrix must be unitary.
	g := NewDense(3, 3, []complex128{
		0, 1 + 1i, 2i,
		-1 + 1i, 0, 0.5,
		2i, -0.5, 0,
	})
	// Force anti-Hermiticity: g = (g - g†)/2.
	g.AddScaled(-1, g.Dagger())
	g.Scale(0.5)

	u := Expm(g)
	matApprox(t, Mul(u.Dagger(), u), Eye(3), 1e-10)
}

func TestVectorHelpers(t *testing.T) {
	x := []complex128{1, 1i}
	y := []complex128{1i, 1}
	if got := Dotc(x, y); !cApprox(got, 0, tol) {
		t.Errorf("Dotc == %v, want 0", got)
	}
	if got := Norm(x); math.Abs(got-math.Sqrt2) > tol {
		t.Errorf("Norm == %v, want sqrt(2)", got)
	}

	k := KronVec([]complex128{1, 2}, []complex128{0, 1i})
	want := []complex128{0, 1i, 0, 2i}
	for i := range want {
		if !cApprox(k[i], want[i], tol) {
			t.Errorf("KronVec[%d] == %v, want %v", i, k[i], want[i])
		}
	}
}

func TestVecIsFinite(t *testing.T) {
	tcs := []struct {
		name string
		in   []complex128
		eout bool
	}{
		{"finite", []complex128{1, 2i, -3}, true},
		{"nan real", []complex128{complex(math.NaN(), 0)}, false},
		{"inf imag", []complex128{complex(0, math.Inf(1))}, false},
		{"empty", nil, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := VecIsFinite(tc.in); got != tc.eout {
				t.Errorf("VecIsFinite == %v, want %v", got, tc.eout)
			}
		})
	}
}
