package deriv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structgrid/derivops/grid"
)

func TestParallelMatchesSerial(t *testing.T) {
	m := grid.NewUniformMesh(12, 10, 16, 0.1, 0.2, 2.0*math.Pi/16.0)
	f := fillXYZ(m, func(x, y, z float64) float64 {
		return math.Sin(3.0*x)*math.Cos(2.0*y) + 0.3*math.Sin(z)
	})
	v := fillXYZ(m, func(x, y, z float64) float64 {
		return math.Cos(x) * math.Sin(y+z)
	})

	serial := newTestOps(t, m, Config{NumThreads: 1})
	par := newTestOps(t, m, Config{NumThreads: 7})

	// The shared cursor hands out pencils in serial visiting order and
	// each pencil is computed by exactly one worker, so the outputs
	// must agree bit for bit, not just to rounding.
	cases := []struct {
		name string
		run  func(ops *Operators) *grid.Field3D
	}{
		{"DDX_W3", func(o *Operators) *grid.Field3D { return o.DDX(f, grid.Deflt, W3) }},
		{"DDY_C4", func(o *Operators) *grid.Field3D { return o.DDY(f, grid.Deflt, C4) }},
		{"DDZ_C2", func(o *Operators) *grid.Field3D { return o.DDZ(f, grid.Deflt, C2, false) }},
		{"DDZ_FFT", func(o *Operators) *grid.Field3D { return o.DDZ(f, grid.Deflt, FFT, false) }},
		{"D2DX2", func(o *Operators) *grid.Field3D { return o.D2DX2(f, grid.Deflt, MethodDefault) }},
		{"VDDX_W3", func(o *Operators) *grid.Field3D { return o.VDDX(v, f, grid.Deflt, W3) }},
		{"FDDX_NND", func(o *Operators) *grid.Field3D { return o.FDDX(v, f, grid.Deflt, NND) }},
		{"D2DYDZ", func(o *Operators) *grid.Field3D { return o.D2DYDZ(f) }},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.run(serial).Data, tc.run(par).Data, "case %s", tc.name)
	}
}

func TestDDXC4Convergence(t *testing.T) {
	errAt := func(n int) float64 {
		m := grid.NewUniformMesh(n, 4, 4, 1.0/float64(n), 1.0, 1.0)
		f := fillXYZ(m, func(x, y, z float64) float64 { return math.Sin(2.0 * math.Pi * x) })
		got := newTestOps(t, m, Config{NumThreads: 1}).DDX(f, grid.Deflt, C4)
		return maxInteriorErr(m, got, func(x, y, z float64) float64 {
			return 2.0 * math.Pi * math.Cos(2.0*math.Pi*x)
		})
	}

	e1, e2 := errAt(16), errAt(32)
	order := math.Log2(e1 / e2)
	assert.Greaterf(t, order, 3.5, "observed order %.2f (err %.3e -> %.3e)", order, e1, e2)
}

func TestSecondDerivativeOfConstant(t *testing.T) {
	m := grid.NewUniformMesh(8, 8, 8, 0.1, 0.1, 0.1)
	f := fillXYZ(m, func(x, y, z float64) float64 { return 3.7 })
	ops := newTestOps(t, m, Config{NumThreads: 2})

	for name, d := range map[string]*grid.Field3D{
		"D2DX2": ops.D2DX2(f, grid.Deflt, MethodDefault),
		"D2DY2": ops.D2DY2(f, grid.Deflt, MethodDefault),
		"D2DZ2": ops.D2DZ2(f, grid.Deflt, C2),
		"D4DX4": ops.D4DX4(f),
	} {
		// Not bit-zero: 6*c and 4*c in the wider stencils round, so a
		// residual of order eps/dx^n survives.
		assert.Lessf(t, maxInteriorErr(m, d, func(x, y, z float64) float64 { return 0 }),
			1e-9, "operator %s on a constant", name)
	}
}

func TestResultGuardCellsStayZero(t *testing.T) {
	m := grid.NewUniformMesh(6, 6, 8, 0.1, 0.1, 0.1)
	f := fillXYZ(m, func(x, y, z float64) float64 { return x * x })
	d := newTestOps(t, m, Config{NumThreads: 1}).DDX(f, grid.Deflt, MethodDefault)

	for jx := 0; jx < m.Xstart; jx++ {
		for jy := 0; jy < m.Ngy; jy++ {
			for jz := 0; jz < m.Ngz; jz++ {
				require.Zero(t, d.At(jx, jy, jz))
				require.Zero(t, d.At(m.Ngx-1-jx, jy, jz))
			}
		}
	}
}

func TestNonUniformCorrection(t *testing.T) {
	var (
		m     = grid.NewUniformMesh(8, 4, 4, 0.5, 1.0, 1.0)
		slope = 2.0
	)
	m.NonUniform = true
	for i := range m.D1Dx.DataP {
		m.D1Dx.DataP[i] = 0.25
	}
	// Linear profile: the stencil term of D2DX2 vanishes exactly and
	// only the metric correction d1_dx * df/dx survives.
	f := fillXYZ(m, func(x, y, z float64) float64 { return slope * x })
	d := newTestOps(t, m, Config{NumThreads: 1}).D2DX2(f, grid.Deflt, MethodDefault)

	want := 0.25 * slope
	assert.InDelta(t, 0.0,
		maxInteriorErr(m, d, func(x, y, z float64) float64 { return want }), 1e-12)

	// Switching the flag off removes the correction.
	m.NonUniform = false
	d = newTestOps(t, m, Config{NumThreads: 1}).D2DX2(f, grid.Deflt, MethodDefault)
	assert.InDelta(t, 0.0,
		maxInteriorErr(m, d, func(x, y, z float64) float64 { return 0 }), 1e-12)
}

func TestDDYMUSCLOnLinearProfile(t *testing.T) {
	var (
		m     = grid.NewUniformMesh(4, 10, 4, 1.0, 0.5, 1.0)
		slope = 3.0
	)
	f := fillXYZ(m, func(x, y, z float64) float64 { return slope * y })
	vmax := grid.NewField2D(m)
	ops := newTestOps(t, m, Config{NumThreads: 1})

	// The reconstruction accumulates F(-1/2) - F(+1/2), so a linear
	// flux profile yields minus its slope.
	d := ops.DDYMUSCL(f, f, vmax)
	assert.InDelta(t, 0.0,
		maxInteriorErr(m, d, func(x, y, z float64) float64 { return -slope }), 1e-12)
}
