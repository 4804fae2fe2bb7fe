package field

import "fmt"

// SymTensor is a single symmetric rank-2 tensor in two dimensions. Only the
// independent components are stored, so symmetry holds by construction.
type SymTensor struct {
	XX, YY, XY float64
}

func (e SymTensor) Trace() float64 { return e.XX + e.YY }

// Inner is the full tensor contraction e:o, counting the off-diagonal
// component twice.
func (e SymTensor) Inner(o SymTensor) float64 {
	return e.XX*o.XX + e.YY*o.YY + 2*e.XY*o.XY
}

func (e SymTensor) Scale(a float64) SymTensor {
	return SymTensor{a * e.XX, a * e.YY, a * e.XY}
}

// AddScaledIdentity returns e + c*I.
func (e SymTensor) AddScaledIdentity(c float64) SymTensor {
	return SymTensor{e.XX + c, e.YY + c, e.XY}
}

// Tensor is a general (not necessarily symmetric) rank-2 tensor value, the
// pointwise form of a velocity gradient.
type Tensor struct {
	XX, XY, YX, YY float64
}

// Sym returns the symmetric part (t + t^T)/2.
func (t Tensor) Sym() SymTensor {
	return SymTensor{t.XX, t.YY, 0.5 * (t.XY + t.YX)}
}

// TensorField is a rank-2 tensor per node, stored component-wise.
type TensorField struct {
	XX, XY, YX, YY ScalarField
}

func (t TensorField) Len() int { return t.XX.Len() }

func (t TensorField) At(i int) Tensor {
	return Tensor{t.XX.At(i), t.XY.At(i), t.YX.At(i), t.YY.At(i)}
}

// SymTensorField stores only the independent components of a symmetric
// rank-2 tensor per node.
type SymTensorField struct {
	XX, YY, XY ScalarField
}

func NewSymTensorField(n int) SymTensorField {
	return SymTensorField{NewScalarField(n), NewScalarField(n), NewScalarField(n)}
}

func (e SymTensorField) Len() int { return e.XX.Len() }

func (e SymTensorField) At(i int) SymTensor {
	return SymTensor{e.XX.At(i), e.YY.At(i), e.XY.At(i)}
}

func (e SymTensorField) Set(i int, v SymTensor) {
	e.XX.Set(i, v.XX)
	e.YY.Set(i, v.YY)
	e.XY.Set(i, v.XY)
}

// Sym symmetrizes a tensor field nodewise.
func Sym(t TensorField) (R SymTensorField) {
	var (
		n = t.Len()
	)
	R = NewSymTensorField(n)
	runParallel(n, func(kMin, kMax int) {
		for i := kMin; i < kMax; i++ {
			R.Set(i, t.At(i).Sym())
		}
	})
	return
}

// Inner contracts two symmetric tensor fields nodewise into a scalar field.
func Inner(a, b SymTensorField) (R ScalarField) {
	if a.Len() != b.Len() {
		err := fmt.Errorf("tensor field length mismatch: %d vs %d", a.Len(), b.Len())
		panic(err)
	}
	var (
		n = a.Len()
	)
	R = NewScalarField(n)
	runParallel(n, func(kMin, kMax int) {
		for i := kMin; i < kMax; i++ {
			R.Set(i, a.At(i).Inner(b.At(i)))
		}
	})
	return
}

// Trace takes the nodewise trace of a symmetric tensor field.
func Trace(e SymTensorField) (R ScalarField) {
	R = e.XX.Add(e.YY)
	return
}
