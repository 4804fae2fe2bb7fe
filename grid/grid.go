// Package grid is a minimal host-framework collaborator: a uniform
// rectangular grid that supplies the gradient operator and integration
// measure the constitutive library consumes. It exists so the library can
// be exercised and tested without a full finite-element framework; a real
// host substitutes its own field.Gradienter and field.Integrator.
package grid

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/icesim/glenflow/field"
)

// Grid is a node-centered uniform grid on [0, Lx] x [0, Ly] with Nx x Ny
// nodes. Node i sits at (ix*Dx, iy*Dy) with i = ix + Nx*iy. The
// differentiation matrices are assembled sparse once at construction.
type Grid struct {
	Nx, Ny int
	Lx, Ly float64
	Dx, Dy float64

	DiffX, DiffY *sparse.CSR   // one-sided at the boundary, centered inside
	weights      *mat.VecDense // trapezoid quadrature weights per node
}

func New(nx, ny int, lx, ly float64) (*Grid, error) {
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("grid needs at least 2 nodes per direction, have %dx%d", nx, ny)
	}
	if lx <= 0 || ly <= 0 {
		return nil, fmt.Errorf("grid extent must be positive, have %gx%g", lx, ly)
	}
	g := &Grid{
		Nx: nx, Ny: ny,
		Lx: lx, Ly: ly,
		Dx: lx / float64(nx-1),
		Dy: ly / float64(ny-1),
	}
	g.DiffX = g.buildDiffX()
	g.DiffY = g.buildDiffY()
	g.weights = g.buildWeights()
	return g, nil
}

// N is the number of nodes.
func (g *Grid) N() int { return g.Nx * g.Ny }

func (g *Grid) index(ix, iy int) int { return ix + g.Nx*iy }

// Coords returns the physical position of node i.
func (g *Grid) Coords(i int) (x, y float64) {
	ix, iy := i%g.Nx, i/g.Nx
	return float64(ix) * g.Dx, float64(iy) * g.Dy
}

func (g *Grid) buildDiffX() *sparse.CSR {
	var (
		n   = g.N()
		dok = sparse.NewDOK(n, n)
		h   = g.Dx
	)
	for iy := 0; iy < g.Ny; iy++ {
		for ix := 0; ix < g.Nx; ix++ {
			i := g.index(ix, iy)
			switch {
			case ix == 0:
				dok.Set(i, g.index(1, iy), 1/h)
				dok.Set(i, i, -1/h)
			case ix == g.Nx-1:
				dok.Set(i, i, 1/h)
				dok.Set(i, g.index(ix-1, iy), -1/h)
			default:
				dok.Set(i, g.index(ix+1, iy), 0.5/h)
				dok.Set(i, g.index(ix-1, iy), -0.5/h)
			}
		}
	}
	return dok.ToCSR()
}

func (g *Grid) buildDiffY() *sparse.CSR {
	var (
		n   = g.N()
		dok = sparse.NewDOK(n, n)
		h   = g.Dy
	)
	for iy := 0; iy < g.Ny; iy++ {
		for ix := 0; ix < g.Nx; ix++ {
			i := g.index(ix, iy)
			switch {
			case iy == 0:
				dok.Set(i, g.index(ix, 1), 1/h)
				dok.Set(i, i, -1/h)
			case iy == g.Ny-1:
				dok.Set(i, i, 1/h)
				dok.Set(i, g.index(ix, iy-1), -1/h)
			default:
				dok.Set(i, g.index(ix, iy+1), 0.5/h)
				dok.Set(i, g.index(ix, iy-1), -0.5/h)
			}
		}
	}
	return dok.ToCSR()
}

func (g *Grid) buildWeights() *mat.VecDense {
	var (
		n = g.N()
		w = make([]float64, n)
	)
	for iy := 0; iy < g.Ny; iy++ {
		cy := 1.0
		if iy == 0 || iy == g.Ny-1 {
			cy = 0.5
		}
		for ix := 0; ix < g.Nx; ix++ {
			cx := 1.0
			if ix == 0 || ix == g.Nx-1 {
				cx = 0.5
			}
			w[g.index(ix, iy)] = cx * cy * g.Dx * g.Dy
		}
	}
	return mat.NewVecDense(n, w)
}

// GradScalar applies the finite-difference gradient to a scalar field.
func (g *Grid) GradScalar(f field.ScalarField) (R field.VectorField) {
	if f.Len() != g.N() {
		err := fmt.Errorf("field has %d nodes, grid has %d", f.Len(), g.N())
		panic(err)
	}
	R = field.NewVectorField(g.N())
	R.X.V.MulVec(g.DiffX, f.V)
	R.Y.V.MulVec(g.DiffY, f.V)
	return
}

// GradVector applies the gradient to each velocity component: row (XX, XY)
// is grad(ux), row (YX, YY) is grad(uy).
func (g *Grid) GradVector(u field.VectorField) (R field.TensorField) {
	var (
		gx = g.GradScalar(u.X)
		gy = g.GradScalar(u.Y)
	)
	R = field.TensorField{XX: gx.X, XY: gx.Y, YX: gy.X, YY: gy.Y}
	return
}

// Integrate computes the trapezoid-rule integral of f over the grid.
func (g *Grid) Integrate(f field.ScalarField) float64 {
	if f.Len() != g.N() {
		err := fmt.Errorf("field has %d nodes, grid has %d", f.Len(), g.N())
		panic(err)
	}
	return mat.Dot(g.weights, f.V)
}

// Interpolate samples a function of position onto the grid nodes.
func (g *Grid) Interpolate(fn func(x, y float64) float64) (f field.ScalarField) {
	f = field.NewScalarField(g.N())
	d := f.Raw()
	for i := range d {
		x, y := g.Coords(i)
		d[i] = fn(x, y)
	}
	return
}

// InterpolateVector samples a vector function of position onto the grid.
func (g *Grid) InterpolateVector(fn func(x, y float64) (vx, vy float64)) (u field.VectorField) {
	u = field.NewVectorField(g.N())
	dx, dy := u.X.Raw(), u.Y.Raw()
	for i := range dx {
		x, y := g.Coords(i)
		dx[i], dy[i] = fn(x, y)
	}
	return
}
