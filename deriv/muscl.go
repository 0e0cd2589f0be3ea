package deriv

import "github.com/structgrid/derivops/grid"

// DDYMUSCL evaluates d/dy(flux) for du/dt = d/dy(flux(u)) with the
// Kurganov-Tadmor MUSCL reconstruction, vmax giving the maximum local
// characteristic speed per (x, y) column. Both windows are read at
// their own locations; the scheme has no staggered form.
func (ops *Operators) DDYMUSCL(flux, u *grid.Field3D, vmax *grid.Field2D) *grid.Field3D {
	checkShapes("DDYMUSCL", flux, u)
	var (
		m      = ops.mesh
		result = grid.NewField3D(m)
		ncz    = m.Ncz()
	)
	ops.runXY(m.Xstart, m.Xend, m.Ystart, m.Yend, func(_, jx, jy int) {
		var (
			vm   = vmax.At(jx, jy)
			dd   = m.Dy.At(jx, jy)
			base = (jx*m.Ngy + jy) * m.Ngz
		)
		for jz := 0; jz < ncz; jz++ {
			fs := yStencil(flux, jx, jy, jz, grid.Deflt, false)
			us := yStencil(u, jx, jy, jz, grid.Deflt, false)
			result.Data[base+jz] = DDXKT(fs, us, vm) / dd
		}
	})
	return result
}
