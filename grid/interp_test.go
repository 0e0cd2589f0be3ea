package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cubicField(m *Mesh) *Field3D {
	f := NewField3D(m)
	for jx := 0; jx < m.Ngx; jx++ {
		x := float64(jx) + 0.5
		v := x*x*x - 2.0*x
		for jy := 0; jy < m.Ngy; jy++ {
			for jz := 0; jz < m.Ngz; jz++ {
				f.Set(jx, jy, jz, v)
			}
		}
	}
	return f
}

func TestInterpSameLocationReturnsInput(t *testing.T) {
	m := NewUniformMesh(4, 4, 4, 1, 1, 1)
	f := NewField3D(m)
	assert.Same(t, f, InterpTo(f, Centre))
	assert.Same(t, f, InterpTo(f, Deflt))
}

func TestInterpCentreToXLowExactForCubic(t *testing.T) {
	m := NewUniformMesh(8, 4, 4, 1, 1, 1)
	f := cubicField(m)
	r := InterpTo(f, XLow)
	assert.Equal(t, XLow, r.Location())

	// 4-point midpoint interpolation reproduces cubics exactly; the
	// face at index jx sits at coordinate jx.
	for jx := m.Xstart; jx <= m.Xend; jx++ {
		x := float64(jx)
		want := x*x*x - 2.0*x
		assert.InDeltaf(t, want, r.At(jx, 2, 0), 1e-10, "face %d", jx)
	}
}

func TestInterpRoundTripXFace(t *testing.T) {
	m := NewUniformMesh(12, 4, 4, 1, 1, 1)
	f := cubicField(m)

	back := InterpTo(InterpTo(f, XLow), Centre)
	assert.Equal(t, Centre, back.Location())

	// Each hop loses two rows at the region edge, so compare well
	// inside.
	for jx := m.Xstart + 2; jx <= m.Xend-2; jx++ {
		assert.InDeltaf(t, f.At(jx, 2, 0), back.At(jx, 2, 0), 1e-10, "cell %d", jx)
	}
}

func TestInterpZPeriodic(t *testing.T) {
	ncz := 32
	m := NewUniformMesh(4, 4, ncz, 1, 1, 2.0*math.Pi/float64(ncz))
	f := NewField3D(m)
	for jx := 0; jx < m.Ngx; jx++ {
		for jy := 0; jy < m.Ngy; jy++ {
			for jz := 0; jz < m.Ngz; jz++ {
				f.Set(jx, jy, jz, math.Sin(float64(jz%ncz)*m.Dz))
			}
		}
	}
	r := InterpTo(f, ZLow)
	assert.Equal(t, ZLow, r.Location())

	// Every point is filled (periodic axis, no interior restriction)
	// and the wrap point mirrors jz=0.
	for jz := 0; jz < ncz; jz++ {
		want := math.Sin((float64(jz) - 0.5) * m.Dz)
		assert.InDeltaf(t, want, r.At(1, 1, jz), 1e-4, "jz %d", jz)
	}
	assert.Equal(t, r.At(1, 1, 0), r.At(1, 1, ncz))
}

func TestInterpFaceToFaceGoesThroughCentre(t *testing.T) {
	m := NewUniformMesh(8, 8, 8, 1, 1, 1)
	f := cubicField(m).SetLocation(XLow)
	r := InterpTo(f, YLow)
	assert.Equal(t, YLow, r.Location())
}
