package deriv

import "github.com/structgrid/derivops/grid"

/*
 * Mixed second derivatives.
 */

// D2DXDZ composes the z derivative, extended over the x guard cells,
// with the x derivative, so the outer stencil reads valid data.
func (ops *Operators) D2DXDZ(f *grid.Field3D) *grid.Field3D {
	return ops.DDX(ops.DDZ(f, grid.Deflt, MethodDefault, true), grid.Deflt, MethodDefault)
}

// D2DYDZ evaluates the y-z cross derivative directly with a centred
// corner formula: y differences of z neighbours, with the y spacing
// sampled at the neighbouring rows.
func (ops *Operators) D2DYDZ(f *grid.Field3D) *grid.Field3D {
	var (
		m      = ops.mesh
		result = grid.NewField3D(m)
		ncz    = m.Ncz()
	)
	ops.runXY(m.Xstart, m.Xend, m.Ystart, m.Yend, func(_, jx, jy int) {
		for jz := 0; jz < ncz; jz++ {
			jzp := (jz + 1) % ncz
			jzm := (jz - 1 + ncz) % ncz
			result.Set(jx, jy, jz, 0.25*(
				(f.At(jx, jy+1, jzp)-f.At(jx, jy-1, jzp))/m.Dy.At(jx, jy+1)-
					(f.At(jx, jy+1, jzm)-f.At(jx, jy-1, jzm))/m.Dy.At(jx, jy-1))/m.Dz)
		}
	})
	return result
}

// D2DXDY is identically zero: the corner guard cells the cross stencil
// needs are not communicated, so no usable formula exists. Kept as an
// explicit operator so callers get a well-defined (if trivial) result
// rather than reading junk corners.
func (ops *Operators) D2DXDY(f *grid.Field3D) *grid.Field3D {
	return grid.NewField3D(ops.mesh)
}

// Axisymmetric forms. D2DXDZ2D and D2DYDZ2D vanish with no z
// variation; D2DXDY2D has the same corner problem as the 3D form.
func (ops *Operators) D2DXDZ2D(f *grid.Field2D) *grid.Field2D {
	return grid.NewField2D(ops.mesh)
}

func (ops *Operators) D2DYDZ2D(f *grid.Field2D) *grid.Field2D {
	return grid.NewField2D(ops.mesh)
}

func (ops *Operators) D2DXDY2D(f *grid.Field2D) *grid.Field2D {
	return grid.NewField2D(ops.mesh)
}
