package deriv

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/structgrid/derivops/grid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestOps(t *testing.T, m *grid.Mesh, cfg Config) *Operators {
	t.Helper()
	ops, err := NewOperators(m, cfg, testLogger())
	require.NoError(t, err)
	return ops
}

// fillXYZ fills every cell (guards and wrap point included) from an
// analytic function of the physical coordinates, with x and y measured
// from the first interior cell centre and z on [0, ZLength).
func fillXYZ(m *grid.Mesh, fn func(x, y, z float64) float64) *grid.Field3D {
	f := grid.NewField3D(m)
	for jx := 0; jx < m.Ngx; jx++ {
		x := (float64(jx-m.Xstart) + 0.5) * m.Dx.At(jx, 0)
		for jy := 0; jy < m.Ngy; jy++ {
			y := (float64(jy-m.Ystart) + 0.5) * m.Dy.At(jx, jy)
			for jz := 0; jz <= m.Ncz(); jz++ {
				z := float64(jz%m.Ncz()) * m.Dz
				f.Set(jx, jy, jz, fn(x, y, z))
			}
		}
	}
	return f
}

// maxInteriorErr measures the largest deviation from want over the
// restricted interior region.
func maxInteriorErr(m *grid.Mesh, got *grid.Field3D, want func(x, y, z float64) float64) (maxErr float64) {
	for jx := m.Xstart; jx <= m.Xend; jx++ {
		x := (float64(jx-m.Xstart) + 0.5) * m.Dx.At(jx, 0)
		for jy := m.Ystart; jy <= m.Yend; jy++ {
			y := (float64(jy-m.Ystart) + 0.5) * m.Dy.At(jx, jy)
			for jz := 0; jz < m.Ncz(); jz++ {
				z := float64(jz) * m.Dz
				if e := math.Abs(got.At(jx, jy, jz) - want(x, y, z)); e > maxErr {
					maxErr = e
				}
			}
		}
	}
	return
}
