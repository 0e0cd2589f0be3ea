package grid

import (
	"fmt"

	"github.com/notargets/gocfd/utils"
)

// Field2D holds an axisymmetric (z-independent) quantity over the
// (x, y) plane, guard cells included. The backing matrix is row-major
// (Ngx rows, Ngy columns) with DataP exposed for hot loops.
type Field2D struct {
	M   utils.Matrix
	loc Location
}

// NewField2D allocates a zeroed cell-centred 2D field on m.
func NewField2D(m *Mesh) *Field2D {
	return &Field2D{
		M:   utils.NewMatrix(m.Ngx, m.Ngy),
		loc: Centre,
	}
}

// NewField2DFrom wraps an existing metric matrix, e.g. a spacing or
// correction matrix from the Mesh, as a cell-centred field.
func NewField2DFrom(M utils.Matrix) *Field2D {
	return &Field2D{M: M, loc: Centre}
}

func (f *Field2D) Location() Location { return f.loc }

func (f *Field2D) SetLocation(loc Location) *Field2D {
	if loc == Deflt {
		loc = Centre
	}
	f.loc = loc
	return f
}

func (f *Field2D) At(jx, jy int) float64     { return f.M.At(jx, jy) }
func (f *Field2D) Set(jx, jy int, v float64) { f.M.Set(jx, jy, v) }

func (f *Field2D) checkCompatible(op string, g *Field2D) {
	if len(g.M.DataP) != len(f.M.DataP) {
		panic(fmt.Sprintf("field2d %s: shape mismatch", op))
	}
	if g.loc != f.loc {
		panic(fmt.Sprintf("field2d %s: location mismatch %s vs %s", op, f.loc, g.loc))
	}
}

// Add returns f + g at f's location.
func (f *Field2D) Add(g *Field2D) (r *Field2D) {
	f.checkCompatible("add", g)
	nr, nc := f.M.Dims()
	r = &Field2D{M: utils.NewMatrix(nr, nc), loc: f.loc}
	for i, v := range f.M.DataP {
		r.M.DataP[i] = v + g.M.DataP[i]
	}
	return
}

// Mul returns the pointwise product f * g.
func (f *Field2D) Mul(g *Field2D) (r *Field2D) {
	f.checkCompatible("mul", g)
	nr, nc := f.M.Dims()
	r = &Field2D{M: utils.NewMatrix(nr, nc), loc: f.loc}
	for i, v := range f.M.DataP {
		r.M.DataP[i] = v * g.M.DataP[i]
	}
	return
}

// AddInPlace accumulates g into f.
func (f *Field2D) AddInPlace(g *Field2D) *Field2D {
	f.checkCompatible("add", g)
	for i, v := range g.M.DataP {
		f.M.DataP[i] += v
	}
	return f
}
