package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshExtents(t *testing.T) {
	m := NewUniformMesh(10, 6, 16, 0.1, 0.2, 0.5)

	assert.Equal(t, 14, m.Ngx)
	assert.Equal(t, 10, m.Ngy)
	assert.Equal(t, 17, m.Ngz)
	assert.Equal(t, 16, m.Ncz())
	assert.Equal(t, 2, m.Xstart)
	assert.Equal(t, 11, m.Xend)
	assert.Equal(t, 2, m.Ystart)
	assert.Equal(t, 7, m.Yend)
	assert.InDelta(t, 8.0, m.ZLength, 1e-14)
	assert.InDelta(t, 0.1, m.Dx.At(5, 5), 1e-14)
}

func TestField3DIndexingZFastest(t *testing.T) {
	m := NewUniformMesh(4, 4, 8, 1, 1, 1)
	f := NewField3D(m)
	require.Len(t, f.Data, m.Ngx*m.Ngy*m.Ngz)

	f.Set(2, 3, 5, 42.0)
	assert.Equal(t, 42.0, f.Data[(2*m.Ngy+3)*m.Ngz+5])
	assert.Equal(t, 42.0, f.At(2, 3, 5))

	// ZLine aliases the backing store.
	line := f.ZLine(2, 3)
	require.Len(t, line, m.Ngz)
	line[5] = 7.0
	assert.Equal(t, 7.0, f.At(2, 3, 5))
}

func TestFieldLocationTagging(t *testing.T) {
	m := NewUniformMesh(4, 4, 4, 1, 1, 1)
	f := NewField3D(m)
	assert.Equal(t, Centre, f.Location())

	f.SetLocation(XLow)
	assert.Equal(t, XLow, f.Location())
	assert.True(t, XLow.IsFace())

	f.SetLocation(Deflt)
	assert.Equal(t, Centre, f.Location())
	assert.False(t, Centre.IsFace())
}

func TestFieldArithmeticChecksCompatibility(t *testing.T) {
	m := NewUniformMesh(4, 4, 4, 1, 1, 1)
	a := NewField3D(m)
	b := NewField3D(m).SetLocation(XLow)

	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.Mul(b) })

	other := NewField3D(NewUniformMesh(6, 4, 4, 1, 1, 1))
	assert.Panics(t, func() { a.AddInPlace(other) })
}

func TestFieldCopyDoesNotAlias(t *testing.T) {
	m := NewUniformMesh(4, 4, 4, 1, 1, 1)
	a := NewField3D(m).SetLocation(YLow)
	a.Set(1, 1, 1, 3.0)

	b := a.Copy()
	b.Set(1, 1, 1, 9.0)
	assert.Equal(t, 3.0, a.At(1, 1, 1))
	assert.Equal(t, YLow, b.Location())
}

func TestAddScaled2D(t *testing.T) {
	m := NewUniformMesh(4, 4, 4, 1, 1, 1)
	f := NewField3D(m)
	g := NewField3D(m)
	c := NewField2D(m)

	g.Set(2, 2, 1, 2.0)
	c.Set(2, 2, 0.5)
	f.AddScaled2D(c, g)

	assert.Equal(t, 1.0, f.At(2, 2, 1))
	assert.Zero(t, f.At(2, 2, 2))
	assert.Zero(t, f.At(3, 2, 1))
}

func TestField2DArithmetic(t *testing.T) {
	m := NewUniformMesh(4, 4, 4, 1, 1, 1)
	a := NewField2D(m)
	b := NewField2D(m)
	a.Set(1, 2, 2.0)
	b.Set(1, 2, 3.0)

	assert.Equal(t, 5.0, a.Add(b).At(1, 2))
	assert.Equal(t, 6.0, a.Mul(b).At(1, 2))
	assert.Equal(t, 5.0, a.AddInPlace(b).At(1, 2))

	assert.Panics(t, func() { a.Add(NewField2D(m).SetLocation(YLow)) })
}

func TestVectorConstructors(t *testing.T) {
	m := NewUniformMesh(4, 4, 4, 1, 1, 1)
	v3 := NewVector3D(m)
	assert.True(t, v3.Covariant)
	require.NotNil(t, v3.X)

	v2 := NewVector2D(m)
	assert.True(t, v2.Covariant)
	require.NotNil(t, v2.Z)
}
