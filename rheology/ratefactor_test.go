package rheology

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/dual"

	"github.com/icesim/glenflow/field"
)

// Coefficients restated independently of the constants package, so a typo
// there fails here.
const (
	year       = 31557600.0
	a0Cold     = 3.985e-13 * year * 1.0e18
	a0Warm     = 1.916e3 * year * 1.0e18
	qCold      = 60.0
	qWarm      = 139.0
	idealGas   = 8.3144621e-3
	transition = 263.15
)

func TestRateFactorBranches(t *testing.T) {
	var (
		arr = DefaultArrhenius()
		tol = 1e-12
	)
	// Cold branch strictly below the transition
	for _, T := range []float64{200, 250, 260, 263.149999} {
		exact := a0Cold * math.Exp(-qCold/(idealGas*T))
		assert.InDeltaf(t, exact, arr.RateFactor(T), tol*exact,
			"cold branch at T = %v", T)
	}
	// Warm branch at and above the transition
	for _, T := range []float64{263.15, 265, 270, 273.15} {
		exact := a0Warm * math.Exp(-qWarm/(idealGas*T))
		assert.InDeltaf(t, exact, arr.RateFactor(T), tol*exact,
			"warm branch at T = %v", T)
	}
}

func TestRateFactorMeltingPoint(t *testing.T) {
	// 0 C is on the warm branch; with the stated coefficients
	// A = A0_warm exp(-139/(R*273.15)) ~ 158.84 MPa^-3/yr
	A := RateFactor(273.15)
	exact := a0Warm * math.Exp(-qWarm/(idealGas*273.15))
	assert.InDelta(t, exact, A, 1e-12*exact)
	assert.InDelta(t, 158.84, A, 0.01)
}

func TestRateFactorScalarBulkAgree(t *testing.T) {
	var (
		arr = DefaultArrhenius()
		n   = 101
		T   = field.NewScalarField(n)
	)
	// Span both branches including the transition itself
	for i := 0; i < n; i++ {
		T.Set(i, 250+0.25*float64(i))
	}
	A := arr.RateFactorField(T)
	for i := 0; i < n; i++ {
		assert.Equalf(t, arr.RateFactor(T.At(i)), A.At(i),
			"bulk vs scalar at T = %v", T.At(i))
	}
}

func TestRateFactorNoValidation(t *testing.T) {
	// Non-physical temperatures are deliberately not checked; the result
	// just follows the arithmetic.
	assert.Equal(t, 0.0, RateFactor(0))
	assert.True(t, math.IsInf(RateFactor(-10), 1))
}

func TestRateFactorDualDerivative(t *testing.T) {
	var (
		arr = DefaultArrhenius()
	)
	for _, T := range []float64{255, 270} {
		d := arr.RateFactorDual(dual.Number{Real: T, Emag: 1})
		assert.InDelta(t, arr.RateFactor(T), d.Real, 1e-12*d.Real)
		// dA/dT = A * Q / (R T^2)
		Q := qWarm
		if T < transition {
			Q = qCold
		}
		exact := arr.RateFactor(T) * Q / (idealGas * T * T)
		assert.InDeltaf(t, exact, d.Emag, 1e-10*exact, "dA/dT at T = %v", T)
		// and against a central difference
		eps := 1e-4
		fd := (arr.RateFactor(T+eps) - arr.RateFactor(T-eps)) / (2 * eps)
		assert.InDeltaf(t, fd, d.Emag, 1e-5*math.Abs(fd), "dA/dT vs FD at T = %v", T)
	}
}
