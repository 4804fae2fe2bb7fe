// Package ssa assembles the depth-averaged (shallow shelf) pieces around
// the constitutive core: surface elevation with flotation, driving stress,
// and the viscous part of the action functional with a swappable energy
// functional.
package ssa

import (
	"math"

	"github.com/icesim/glenflow/constants"
	"github.com/icesim/glenflow/field"
	"github.com/icesim/glenflow/rheology"
	"github.com/icesim/glenflow/utils"
)

// Surface computes the ice surface elevation from bed elevation and
// thickness. Where the ice is too thin to ground it floats, so the surface
// is max(b + h, (1 - rho_ice/rho_water) * h).
func Surface(b, h field.ScalarField) (s field.ScalarField) {
	var (
		n     = h.Len()
		ratio = 1 - constants.RhoIce/constants.RhoWater
		bd    = b.Raw()
		hd    = h.Raw()
	)
	s = field.NewScalarField(n)
	sd := s.Raw()
	utils.RunParallel(field.Procs, n, func(kMin, kMax int) {
		for i := kMin; i < kMax; i++ {
			sd[i] = math.Max(bd[i]+hd[i], ratio*hd[i])
		}
	})
	return
}

// DrivingStress computes tau_d = -rho_ice * g * h * grad(s) in Pa, the
// right-hand side of the depth-averaged momentum balance.
func DrivingStress(g field.Gradienter, s, h field.ScalarField) (tau field.VectorField) {
	var (
		gs    = g.GradScalar(s)
		scale = -constants.RhoIce * constants.Gravity
	)
	tau = field.VectorField{
		X: gs.X.MulElem(h).Scale(scale),
		Y: gs.Y.MulElem(h).Scale(scale),
	}
	return
}

// EnergyFunc is the pluggable viscous energy functional contract: any
// callable mapping (velocity, thickness, auxiliary rheological field) to a
// pointwise scalar energy density. The default parameterizes by fluidity;
// a caller substitutes its own to use a different rheological variable.
type EnergyFunc func(u field.VectorField, h, A field.ScalarField) field.ScalarField

// DepthAveraged bundles the host operators with a viscous energy
// functional. The host solver differentiates the action it produces; this
// type only evaluates it.
type DepthAveraged struct {
	grad    field.Gradienter
	quad    field.Integrator
	law     rheology.Law
	viscous EnergyFunc
}

// Option configures a DepthAveraged model at construction.
type Option func(*DepthAveraged)

// WithLaw overrides the default Glen law parameters.
func WithLaw(law rheology.Law) Option {
	return func(m *DepthAveraged) {
		m.law = law
		m.viscous = m.defaultViscous
	}
}

// WithViscousEnergy substitutes an alternative viscous energy functional.
func WithViscousEnergy(fn EnergyFunc) Option {
	return func(m *DepthAveraged) { m.viscous = fn }
}

func NewDepthAveraged(grad field.Gradienter, quad field.Integrator, opts ...Option) (m *DepthAveraged) {
	m = &DepthAveraged{
		grad: grad,
		quad: quad,
		law:  rheology.NewLaw(),
	}
	m.viscous = m.defaultViscous
	for _, opt := range opts {
		opt(m)
	}
	return
}

func (m *DepthAveraged) defaultViscous(u field.VectorField, h, A field.ScalarField) field.ScalarField {
	return m.law.ViscousEnergy(m.grad, u, h, A)
}

// EnergyDensity evaluates the model's viscous energy density field.
func (m *DepthAveraged) EnergyDensity(u field.VectorField, h, A field.ScalarField) field.ScalarField {
	return m.viscous(u, h, A)
}

// ViscousAction integrates the energy density over the domain with the
// host's measure.
func (m *DepthAveraged) ViscousAction(u field.VectorField, h, A field.ScalarField) float64 {
	return m.quad.Integrate(m.viscous(u, h, A))
}
