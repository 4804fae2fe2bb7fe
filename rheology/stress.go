package rheology

import (
	"math"

	"github.com/icesim/glenflow/constants"
	"github.com/icesim/glenflow/field"
	"github.com/icesim/glenflow/utils"
)

// DefaultMinStrainRate is the regularization floor for the effective strain
// rate, in yr**-1. It is three to four orders of magnitude below strain
// rates typical of flowing ice (0.1 - 1 yr**-1), small enough not to
// perturb the physics while keeping the viscosity finite at zero strain
// rate.
const DefaultMinStrainRate = 1e-5

// Law is Glen's power-law rheology with exponent N > 1 and a smooth
// minimum-strain-rate regularization. The zero value is not usable; build
// one with NewLaw or from params.
type Law struct {
	N             float64 // Glen flow-law exponent
	MinStrainRate float64 // regularization floor, yr**-1; 0 disables
}

func NewLaw() Law {
	return Law{N: constants.GlenFlowLaw, MinStrainRate: DefaultMinStrainRate}
}

// EffectiveStrainRate is the scalar invariant sqrt((eps:eps + tr^2)/2)
// blended smoothly with the regularization floor:
// sqrt((eps:eps + tr^2)/2 + MinStrainRate^2). The blend is smooth at
// eps = 0, unlike a hard max, which matters because the host solver
// linearizes through this function.
func (l Law) EffectiveStrainRate(eps field.SymTensor) float64 {
	tr := eps.Trace()
	return math.Sqrt((eps.Inner(eps)+tr*tr)/2 + l.MinStrainRate*l.MinStrainRate)
}

// Viscosity is the nonlinear coefficient mu = 0.5 A^(-1/n) epsE^(1/n - 1).
// The caller is responsible for regularizing epsE; with epsE = 0 and n > 1
// the result diverges.
func (l Law) Viscosity(epsE, A float64) float64 {
	return 0.5 * math.Pow(A, -1/l.N) * math.Pow(epsE, 1/l.N-1)
}

// MembraneStress computes M = 2 mu (eps + tr(eps) I) for one point. The
// result is symmetric by construction.
func (l Law) MembraneStress(eps field.SymTensor, A float64) field.SymTensor {
	var (
		tr = eps.Trace()
		mu = l.Viscosity(l.EffectiveStrainRate(eps), A)
	)
	return eps.AddScaledIdentity(tr).Scale(2 * mu)
}

// MembraneStressField applies the membrane stress law nodewise over a
// strain-rate field and a fluidity field.
func (l Law) MembraneStressField(eps field.SymTensorField, A field.ScalarField) (M field.SymTensorField) {
	var (
		n = eps.Len()
	)
	M = field.NewSymTensorField(n)
	utils.RunParallel(field.Procs, n, func(kMin, kMax int) {
		for i := kMin; i < kMax; i++ {
			M.Set(i, l.MembraneStress(eps.At(i), A.At(i)))
		}
	})
	return
}

// StrainRate composes the host's gradient operator with symmetrization:
// eps(u) = (grad u + grad u^T) / 2.
func StrainRate(g field.Gradienter, u field.VectorField) field.SymTensorField {
	return field.Sym(g.GradVector(u))
}
