package grid

// Vector3D bundles three component fields. The Covariant flag records
// the co/contravariant basis of the components; the operator engine
// passes it through untouched.
type Vector3D struct {
	X, Y, Z   *Field3D
	Covariant bool
}

// NewVector3D allocates a zeroed covariant vector on m.
func NewVector3D(m *Mesh) *Vector3D {
	return &Vector3D{
		X:         NewField3D(m),
		Y:         NewField3D(m),
		Z:         NewField3D(m),
		Covariant: true,
	}
}

// Vector2D is the axisymmetric counterpart of Vector3D.
type Vector2D struct {
	X, Y, Z   *Field2D
	Covariant bool
}

// NewVector2D allocates a zeroed covariant 2D vector on m.
func NewVector2D(m *Mesh) *Vector2D {
	return &Vector2D{
		X:         NewField2D(m),
		Y:         NewField2D(m),
		Z:         NewField2D(m),
		Covariant: true,
	}
}
