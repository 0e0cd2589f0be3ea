package deriv

import "github.com/structgrid/derivops/grid"

/*
 * Vector forms: componentwise application preserving the co- or
 * contravariant basis tag. Only the z derivative is needed in vector
 * form by the differential-geometry layer.
 */

// DDZVec applies DDZ to each component of v.
func (ops *Operators) DDZVec(v *grid.Vector3D, outloc grid.Location, method Method) *grid.Vector3D {
	return &grid.Vector3D{
		X:         ops.DDZ(v.X, outloc, method, false),
		Y:         ops.DDZ(v.Y, outloc, method, false),
		Z:         ops.DDZ(v.Z, outloc, method, false),
		Covariant: v.Covariant,
	}
}

// DDZVec2D is identically zero for axisymmetric vectors, keeping the
// basis tag of the input.
func (ops *Operators) DDZVec2D(v *grid.Vector2D) *grid.Vector2D {
	r := grid.NewVector2D(ops.mesh)
	r.Covariant = v.Covariant
	return r
}
