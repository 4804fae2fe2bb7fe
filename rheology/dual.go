package rheology

import (
	"math"

	"gonum.org/v1/gonum/num/dual"

	"github.com/icesim/glenflow/constants"
)

// Dual-number twins of the scalar kernels. A host performing Newton
// iteration seeds T or epsE with Emag = 1 to get the value and its
// directional derivative in a single forward pass.

// RateFactorDual evaluates A(T) with its derivative dA/dT. The branch is
// picked from the real part of T; within a branch the law is smooth.
func (a Arrhenius) RateFactorDual(T dual.Number) dual.Number {
	A0, Q := a.A0Warm, a.QWarm
	if T.Real < a.Transition {
		A0, Q = a.A0Cold, a.QCold
	}
	return dual.Scale(A0, dual.Exp(dual.Scale(-Q/constants.IdealGas, dual.Inv(T))))
}

// ViscosityDual evaluates the regularized viscosity with its derivative
// with respect to the raw (unregularized) effective strain rate.
func (l Law) ViscosityDual(epsE dual.Number, A float64) dual.Number {
	reg := dual.Sqrt(dual.Add(dual.Mul(epsE, epsE),
		dual.Number{Real: l.MinStrainRate * l.MinStrainRate}))
	return dual.Scale(0.5*math.Pow(A, -1/l.N), dual.PowReal(reg, 1/l.N-1))
}
