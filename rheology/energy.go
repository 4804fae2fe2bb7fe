package rheology

import (
	"github.com/icesim/glenflow/field"
	"github.com/icesim/glenflow/utils"
)

// EnergyDensity is the pointwise viscous dissipation density
// n/(n+1) * h * M(eps, A):eps of the depth-averaged action functional.
func (l Law) EnergyDensity(eps field.SymTensor, A, h float64) float64 {
	M := l.MembraneStress(eps, A)
	return l.N / (l.N + 1) * h * M.Inner(eps)
}

// ViscousEnergy produces the scalar energy density field for velocity u,
// thickness h and fluidity A. The host framework integrates the result over
// the domain and differentiates it with respect to u; no integration
// happens here.
func (l Law) ViscousEnergy(g field.Gradienter, u field.VectorField, h, A field.ScalarField) (E field.ScalarField) {
	var (
		eps = StrainRate(g, u)
		n   = eps.Len()
	)
	E = field.NewScalarField(n)
	utils.RunParallel(field.Procs, n, func(kMin, kMax int) {
		for i := kMin; i < kMax; i++ {
			E.Set(i, l.EnergyDensity(eps.At(i), A.At(i), h.At(i)))
		}
	})
	return
}
