package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarFieldOps(t *testing.T) {
	f := NewScalarField(3, []float64{1, 2, 3})
	g := NewScalarField(3, []float64{4, 5, 6})

	assert.Equal(t, []float64{2, 4, 6}, f.Scale(2).Raw())
	assert.Equal(t, []float64{5, 7, 9}, f.Add(g).Raw())
	assert.Equal(t, []float64{4, 10, 18}, f.MulElem(g).Raw())
	assert.Equal(t, 32.0, f.Dot(g))
	// source fields untouched
	assert.Equal(t, []float64{1, 2, 3}, f.Raw())

	assert.Panics(t, func() { f.Add(NewScalarField(2)) })
	assert.Panics(t, func() { NewScalarField(2, []float64{1, 2, 3}) })
}

func TestMapMatchesSequential(t *testing.T) {
	// The parallel map must agree elementwise with a plain loop regardless
	// of partitioning.
	var (
		n  = 1003
		f  = NewScalarField(n)
		fn = func(x float64) float64 { return math.Exp(-x * x) }
	)
	for i := 0; i < n; i++ {
		f.Set(i, float64(i)*0.01-5)
	}
	R := Map(f, fn)
	for i := 0; i < n; i++ {
		assert.Equal(t, fn(f.At(i)), R.At(i))
	}
}

func TestSymTensorAlgebra(t *testing.T) {
	e := SymTensor{XX: 1, YY: 2, XY: 3}
	assert.Equal(t, 3.0, e.Trace())
	// e:e = 1 + 4 + 2*9
	assert.Equal(t, 23.0, e.Inner(e))
	assert.Equal(t, SymTensor{XX: 2, YY: 4, XY: 6}, e.Scale(2))
	assert.Equal(t, SymTensor{XX: 4, YY: 5, XY: 3}, e.AddScaledIdentity(3))
}

func TestTensorSym(t *testing.T) {
	g := Tensor{XX: 1, XY: 2, YX: 4, YY: 3}
	assert.Equal(t, SymTensor{XX: 1, YY: 3, XY: 3}, g.Sym())
	// antisymmetric part vanishes
	rot := Tensor{XY: 1, YX: -1}
	assert.Equal(t, SymTensor{}, rot.Sym())
}

func TestSymTensorFieldRoundTrip(t *testing.T) {
	var (
		n = 5
		e = NewSymTensorField(n)
	)
	want := SymTensor{XX: 0.5, YY: -0.25, XY: 1.5}
	e.Set(3, want)
	assert.Equal(t, want, e.At(3))
	assert.Equal(t, SymTensor{}, e.At(0))
}

func TestInnerAndTraceFields(t *testing.T) {
	var (
		n = 4
		a = NewSymTensorField(n)
		b = NewSymTensorField(n)
	)
	for i := 0; i < n; i++ {
		a.Set(i, SymTensor{XX: float64(i), YY: 1, XY: 2})
		b.Set(i, SymTensor{XX: 1, YY: float64(i), XY: 0.5})
	}
	inner := Inner(a, b)
	tr := Trace(a)
	for i := 0; i < n; i++ {
		assert.Equal(t, a.At(i).Inner(b.At(i)), inner.At(i))
		assert.Equal(t, float64(i)+1, tr.At(i))
	}
}
