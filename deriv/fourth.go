package deriv

import "github.com/structgrid/derivops/grid"

/*
 * Fourth derivatives, used for hyper-diffusion terms. Only the 2nd
 * order centred scheme exists, so there is no method table and no
 * staggered form; inputs are taken at their own location.
 */

// D4DX4 computes the fourth x derivative of f.
func (ops *Operators) D4DX4(f *grid.Field3D) *grid.Field3D {
	return ops.applyXDiff(f, D4DX4C2, 4, grid.Deflt).SetLocation(f.Location())
}

// D4DY4 computes the fourth y derivative of f.
func (ops *Operators) D4DY4(f *grid.Field3D) *grid.Field3D {
	return ops.applyYDiff(f, D4DX4C2, 4, grid.Deflt).SetLocation(f.Location())
}

// D4DZ4 computes the fourth periodic z derivative of f.
func (ops *Operators) D4DZ4(f *grid.Field3D) *grid.Field3D {
	m := ops.mesh
	return ops.applyZDiff(f, D4DX4C2, 4, grid.Deflt, m.Xstart, m.Xend).SetLocation(f.Location())
}

// D4DX42D and D4DY42D are the axisymmetric forms.
func (ops *Operators) D4DX42D(f *grid.Field2D) *grid.Field2D {
	return ops.applyXDiff2D(f, D4DX4C2, 4, grid.Deflt)
}

func (ops *Operators) D4DY42D(f *grid.Field2D) *grid.Field2D {
	return ops.applyYDiff2D(f, D4DX4C2, 4, grid.Deflt)
}

// D4DZ42D is identically zero for axisymmetric fields.
func (ops *Operators) D4DZ42D(f *grid.Field2D) *grid.Field2D {
	return grid.NewField2D(ops.mesh)
}
