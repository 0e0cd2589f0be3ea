package grid

import "fmt"

// Field3D holds one scalar quantity over the local 3D sub-domain,
// guard cells included, tagged with the Location its values live at.
// Storage is a single flat slice in (x, y, z) order with z fastest, so
// a z line is contiguous. Operator results are always freshly
// allocated and never alias their inputs.
type Field3D struct {
	Data []float64
	mesh *Mesh
	loc  Location
}

// NewField3D allocates a zeroed cell-centred field on m.
func NewField3D(m *Mesh) *Field3D {
	return &Field3D{
		Data: make([]float64, m.Ngx*m.Ngy*m.Ngz),
		mesh: m,
		loc:  Centre,
	}
}

func (f *Field3D) Mesh() *Mesh        { return f.mesh }
func (f *Field3D) Location() Location { return f.loc }

// SetLocation tags the field. Deflt is normalized to Centre, matching
// the convention that untagged data is collocated.
func (f *Field3D) SetLocation(loc Location) *Field3D {
	if loc == Deflt {
		loc = Centre
	}
	f.loc = loc
	return f
}

// Index flattens (jx, jy, jz) into the backing slice.
func (f *Field3D) Index(jx, jy, jz int) int {
	return (jx*f.mesh.Ngy+jy)*f.mesh.Ngz + jz
}

func (f *Field3D) At(jx, jy, jz int) float64 {
	return f.Data[(jx*f.mesh.Ngy+jy)*f.mesh.Ngz+jz]
}

func (f *Field3D) Set(jx, jy, jz int, v float64) {
	f.Data[(jx*f.mesh.Ngy+jy)*f.mesh.Ngz+jz] = v
}

// ZLine returns the contiguous z line at (jx, jy), length Ngz
// including the wrap point. The slice aliases the field's storage.
func (f *Field3D) ZLine(jx, jy int) []float64 {
	base := (jx*f.mesh.Ngy + jy) * f.mesh.Ngz
	return f.Data[base : base+f.mesh.Ngz]
}

// Copy returns a fresh field with the same data and location.
func (f *Field3D) Copy() (r *Field3D) {
	r = NewField3D(f.mesh)
	copy(r.Data, f.Data)
	r.loc = f.loc
	return
}

// checkCompatible panics unless g lives on the same mesh and location.
// Arithmetic between fields at different locations is undefined; an
// interpolation step is required first.
func (f *Field3D) checkCompatible(op string, g *Field3D) {
	if g.mesh != f.mesh || len(g.Data) != len(f.Data) {
		panic(fmt.Sprintf("field3d %s: shape mismatch", op))
	}
	if g.loc != f.loc {
		panic(fmt.Sprintf("field3d %s: location mismatch %s vs %s", op, f.loc, g.loc))
	}
}

// Add returns f + g at f's location.
func (f *Field3D) Add(g *Field3D) (r *Field3D) {
	f.checkCompatible("add", g)
	r = NewField3D(f.mesh)
	r.loc = f.loc
	for i, v := range f.Data {
		r.Data[i] = v + g.Data[i]
	}
	return
}

// Mul returns the pointwise product f * g at f's location.
func (f *Field3D) Mul(g *Field3D) (r *Field3D) {
	f.checkCompatible("mul", g)
	r = NewField3D(f.mesh)
	r.loc = f.loc
	for i, v := range f.Data {
		r.Data[i] = v * g.Data[i]
	}
	return
}

// AddInPlace accumulates g into f.
func (f *Field3D) AddInPlace(g *Field3D) *Field3D {
	f.checkCompatible("add", g)
	for i, v := range g.Data {
		f.Data[i] += v
	}
	return f
}

// AddScaled2D accumulates c(jx,jy) * g(jx,jy,jz) into f, with c a 2D
// coefficient such as a metric non-uniformity matrix.
func (f *Field3D) AddScaled2D(c *Field2D, g *Field3D) *Field3D {
	f.checkCompatible("addscaled", g)
	var (
		ngy, ngz = f.mesh.Ngy, f.mesh.Ngz
	)
	for jx := 0; jx < f.mesh.Ngx; jx++ {
		for jy := 0; jy < ngy; jy++ {
			cc := c.M.At(jx, jy)
			base := (jx*ngy + jy) * ngz
			for jz := 0; jz < ngz; jz++ {
				f.Data[base+jz] += cc * g.Data[base+jz]
			}
		}
	}
	return f
}
