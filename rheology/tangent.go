package rheology

import (
	"gonum.org/v1/gonum/mat"

	"github.com/icesim/glenflow/field"
	"github.com/icesim/glenflow/utils"
)

// Tangent returns the constitutive tangent dM/deps at the linearization
// point (eps, A), in Voigt ordering (xx, yy, xy) with the shear component
// counted once, as a 3x3 matrix. A Newton-type host assembles this into
// its Jacobian; the same information is available in forward mode through
// the dual-number kernels.
func (l Law) Tangent(eps field.SymTensor, A float64) *mat.Dense {
	var (
		tr   = eps.Trace()
		epsE = l.EffectiveStrainRate(eps)
		mu   = l.Viscosity(epsE, A)
		// dmu/depsE
		dmu = mu * (1/l.N - 1) / epsE
		// b = eps + tr(eps) I in Voigt form, so that M = 2 mu b
		b = [3]float64{eps.XX + tr, eps.YY + tr, eps.XY}
		// g = grad of the regularized effective strain rate
		g = [3]float64{(eps.XX + tr) / (2 * epsE), (eps.YY + tr) / (2 * epsE), eps.XY / epsE}
	)
	D := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D.Set(i, j, 2*dmu*b[i]*g[j])
		}
	}
	// 2 mu * d(eps + tr I)/deps
	K := [3][3]float64{{2, 1, 0}, {1, 2, 0}, {0, 0, 1}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D.Set(i, j, D.At(i, j)+2*mu*K[i][j])
		}
	}
	return D
}

// TangentField evaluates the tangent at every node of a strain-rate field.
func (l Law) TangentField(eps field.SymTensorField, A field.ScalarField) (D []*mat.Dense) {
	var (
		n = eps.Len()
	)
	D = make([]*mat.Dense, n)
	utils.RunParallel(field.Procs, n, func(kMin, kMax int) {
		for i := kMin; i < kMax; i++ {
			D[i] = l.Tangent(eps.At(i), A.At(i))
		}
	})
	return
}
