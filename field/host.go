package field

import "math"

// Gradienter is the differential operator the host framework must supply.
// GradVector returns the full velocity gradient with rows (XX, XY) = grad(ux)
// and (YX, YY) = grad(uy).
type Gradienter interface {
	GradScalar(f ScalarField) VectorField
	GradVector(u VectorField) TensorField
}

// Integrator is the host's domain integration measure: it turns a scalar
// field into the value of its integral over the domain.
type Integrator interface {
	Integrate(f ScalarField) float64
}

// NormL2 is the L2 norm of a scalar field under the host's measure.
func NormL2(q Integrator, f ScalarField) float64 {
	return math.Sqrt(q.Integrate(f.MulElem(f)))
}

// NormL2Vector is the L2 norm of a vector field under the host's measure.
func NormL2Vector(q Integrator, u VectorField) float64 {
	return math.Sqrt(q.Integrate(u.X.MulElem(u.X).Add(u.Y.MulElem(u.Y))))
}
