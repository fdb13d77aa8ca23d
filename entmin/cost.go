package entmin

import (
	"github.com/photonlab/entmin/entmin/cmat"
)

// splitComplex decomposes phi into a flat real parameter vector,
// [re(phi)..., im(phi)...], so a real-valued gradient engine can drive the
// complex amplitudes.
func splitComplex(phi []complex128) []float64 {
	n := len(phi)
	params := make([]float64, 2*n)
	for k, v := range phi {
		params[k] = real(v)
		params[n+k] = imag(v)
	}
	return params
}

// joinComplex reassembles the complex amplitude vector from its real
// parameter decomposition.
func joinComplex(params []float64) []complex128 {
	n := len(params) / 2
	phi := make([]complex128, n)
	for k := range phi {
		phi[k] = complex(params[k], params[n+k])
	}
	return phi
}

// costFn evaluates the optimization objective for the variational mode. All
// fields are immutable across iterations; only the parameter vector passed
// to each call changes.
type costFn struct {
	n       int
	u       *cmat.Dense // beamsplitter unitary, built once
	psi     []complex128
	x, p    *cmat.Dense
	penalty float64
}

func newCostFn(n int, theta, penalty float64, psi []complex128, x, p *cmat.Dense) *costFn {
	return &costFn{
		n:       n,
		u:       Beamsplitter(n, theta),
		psi:     psi,
		x:       x,
		p:       p,
		penalty: penalty,
	}
}

// reduced runs the forward pass from raw parameters to the reduced density
// matrix of mode B.
func (c *costFn) reduced(params []float64) *cmat.Dense {
	return ReducedB(c.u, c.psi, joinComplex(params))
}

// costOf computes the objective on a reduced density matrix:
//
//	raw  = Tr(ρ²) - s·Tr(ρx)² - s·Tr(ρp)²
//	cost = Re(raw) / Re(Tr ρ)²
//
// Tr(ρ²) rewards purity; the penalty terms drive the mean quadratures to
// zero so the optimizer cannot trade displacement for purity; the trace
// normalization absorbs norm drift in the unrenormalized parameters.
func (c *costFn) costOf(rho *cmat.Dense) float64 {
	s := complex(c.penalty, 0)
	purity := cmat.MulTrace(rho, rho)
	mx := cmat.MulTrace(rho, c.x)
	mp := cmat.MulTrace(rho, c.p)
	raw := purity - s*mx*mx - s*mp*mp
	tr := real(cmat.Trace(rho))
	return real(raw) / (tr * tr)
}

// eval is the scalar objective as a function of the real parameter vector,
// the shape the gradient engine consumes.
func (c *costFn) eval(params []float64) float64 {
	return c.costOf(c.reduced(params))
}
