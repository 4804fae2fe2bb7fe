// Package field provides the discrete field types the constitutive law
// operates on, together with the elementwise tensor algebra used to build
// it. A field holds one value per node of whatever discretization the host
// framework uses; the package knows nothing about mesh topology. The host
// supplies differential and integral operators through the Gradienter and
// Integrator interfaces.
package field

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/icesim/glenflow/utils"
)

// Procs is the number of goroutines used for elementwise field operations.
var Procs = runtime.GOMAXPROCS(0)

// ScalarField is a scalar value per node.
type ScalarField struct {
	V *mat.VecDense
}

func NewScalarField(n int, dataO ...[]float64) (f ScalarField) {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewScalarField n = %v, len(data[0]) = %v", n, len(dataO[0]))
			panic(err)
		}
		f = ScalarField{mat.NewVecDense(n, dataO[0])}
		return
	}
	f = ScalarField{mat.NewVecDense(n, make([]float64, n))}
	return
}

// NewConstScalarField fills every node with val.
func NewConstScalarField(n int, val float64) (f ScalarField) {
	f = NewScalarField(n)
	d := f.Raw()
	for i := range d {
		d[i] = val
	}
	return
}

func (f ScalarField) Len() int               { return f.V.Len() }
func (f ScalarField) At(i int) float64       { return f.V.AtVec(i) }
func (f ScalarField) Set(i int, val float64) { f.V.SetVec(i, val) }
func (f ScalarField) Raw() []float64         { return f.V.RawVector().Data }

func (f ScalarField) Copy() (R ScalarField) {
	R = NewScalarField(f.Len())
	copy(R.Raw(), f.Raw())
	return
}

func (f ScalarField) Scale(a float64) (R ScalarField) { // Does not change receiver
	R = f.Copy()
	floats.Scale(a, R.Raw())
	return
}

func (f ScalarField) Add(g ScalarField) (R ScalarField) { // Does not change receiver
	f.checkLen(g)
	R = f.Copy()
	floats.Add(R.Raw(), g.Raw())
	return
}

func (f ScalarField) MulElem(g ScalarField) (R ScalarField) { // Does not change receiver
	f.checkLen(g)
	R = f.Copy()
	floats.Mul(R.Raw(), g.Raw())
	return
}

func (f ScalarField) Dot(g ScalarField) float64 {
	f.checkLen(g)
	return floats.Dot(f.Raw(), g.Raw())
}

func (f ScalarField) checkLen(g ScalarField) {
	if f.Len() != g.Len() {
		err := fmt.Errorf("field length mismatch: %d vs %d", f.Len(), g.Len())
		panic(err)
	}
}

// Map applies fn at every node in parallel. The scalar evaluation path of
// a constitutive kernel is this same mapping restricted to one element.
func Map(f ScalarField, fn func(float64) float64) (R ScalarField) {
	var (
		n   = f.Len()
		in  = f.Raw()
		out = make([]float64, n)
	)
	runParallel(n, func(kMin, kMax int) {
		for i := kMin; i < kMax; i++ {
			out[i] = fn(in[i])
		}
	})
	R = NewScalarField(n, out)
	return
}

// VectorField is a velocity-like field with one 2D vector per node.
type VectorField struct {
	X, Y ScalarField
}

func NewVectorField(n int) VectorField {
	return VectorField{NewScalarField(n), NewScalarField(n)}
}

func (u VectorField) Len() int { return u.X.Len() }

func runParallel(n int, work func(kMin, kMax int)) {
	utils.RunParallel(Procs, n, work)
}
