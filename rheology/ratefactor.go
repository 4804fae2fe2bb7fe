// Package rheology implements the nonlinear viscous constitutive relation
// for glacier ice: the temperature-dependent rate factor of Glen's flow
// law, the membrane stress tensor, and the pointwise viscous energy density
// consumed by a host PDE solver.
package rheology

import (
	"math"

	"github.com/icesim/glenflow/constants"
	"github.com/icesim/glenflow/field"
)

// Arrhenius holds the coefficients of the two-branch Arrhenius law for the
// rate factor. Prefactors are in MPa**-n yr**-1, activation energies in
// kJ/mol, the transition temperature in Kelvin. Values are bound at
// construction and never mutated.
type Arrhenius struct {
	A0Cold, A0Warm float64
	QCold, QWarm   float64
	Transition     float64
}

// DefaultArrhenius returns the standard coefficients for glacier ice.
func DefaultArrhenius() Arrhenius {
	return Arrhenius{
		A0Cold:     constants.A0Cold,
		A0Warm:     constants.A0Warm,
		QCold:      constants.QCold,
		QWarm:      constants.QWarm,
		Transition: constants.TransitionTemperature,
	}
}

// RateFactor computes A(T) = A0 exp(-Q/RT) for a single temperature in
// Kelvin. Temperatures strictly below the transition take the cold branch,
// all others the warm branch. Non-physical inputs (T <= 0) are not checked;
// the result is whatever the exponential produces.
func (a Arrhenius) RateFactor(T float64) float64 {
	A0, Q := a.A0Warm, a.QWarm
	if T < a.Transition {
		A0, Q = a.A0Cold, a.QCold
	}
	return A0 * math.Exp(-Q/(constants.IdealGas*T))
}

// RateFactorField evaluates the rate factor elementwise over a temperature
// field. The scalar RateFactor is the single-element case of this same
// kernel, so the two forms agree exactly.
func (a Arrhenius) RateFactorField(T field.ScalarField) field.ScalarField {
	return field.Map(T, a.RateFactor)
}

// RateFactor evaluates the standard-coefficient rate factor for one
// temperature in Kelvin.
func RateFactor(T float64) float64 {
	return DefaultArrhenius().RateFactor(T)
}

// RateFactorField evaluates the standard-coefficient rate factor over a
// temperature field.
func RateFactorField(T field.ScalarField) field.ScalarField {
	return DefaultArrhenius().RateFactorField(T)
}
