package grid

import (
	"runtime"

	"github.com/notargets/gocfd/utils"
)

// Guard cell width on the x and y axes. Five-point stencils read two
// cells either side of the operated point, so two guard rows are the
// minimum the traversal regions can tolerate.
const (
	MXG = 2
	MYG = 2
)

// Mesh describes the local structured sub-domain: extents including
// guard cells, per-axis spacing, staggering and non-uniformity flags.
// It is built once before any operator call and read-only afterwards.
// Halo (guard) values of any field handed to an operator are assumed
// to have been filled by the communication layer already.
//
// The z axis is periodic by construction and carries one extra sample,
// Ngz = Ncz+1, duplicating the wrap point (index Ncz mirrors index 0).
type Mesh struct {
	Ngx, Ngy, Ngz int // local dims including guards (+wrap point in z)

	Xstart, Xend int // inclusive interior range in x
	Ystart, Yend int // inclusive interior range in y

	// Cell spacing. Dx and Dy may vary with position (non-uniform
	// grids); Dz is constant on the periodic axis.
	Dx, Dy  utils.Matrix // (Ngx x Ngy)
	Dz      float64
	ZLength float64 // physical extent of the periodic axis

	// StaggerGrids enables the staggered variable arrangement and with
	// it the centre<->face scheme tables and location resolution.
	StaggerGrids bool

	// NonUniform marks Dx/Dy as position dependent. Second derivatives
	// then pick up a first-derivative correction scaled by D1Dx/D1Dy,
	// which hold d/di(1/dx) per axis as loaded with the metric.
	NonUniform bool
	D1Dx, D1Dy utils.Matrix
}

// NewUniformMesh builds a mesh with nx*ny interior cells, ncz points on
// the periodic axis and constant spacing. Guard cells are added on x
// and y; the z wrap point is appended. Useful for tests and
// diagnostics; production meshes come from the grid loader.
func NewUniformMesh(nx, ny, ncz int, dx, dy, dz float64) (m *Mesh) {
	ngx, ngy := nx+2*MXG, ny+2*MYG
	m = &Mesh{
		Ngx:     ngx,
		Ngy:     ngy,
		Ngz:     ncz + 1,
		Xstart:  MXG,
		Xend:    ngx - MXG - 1,
		Ystart:  MYG,
		Yend:    ngy - MYG - 1,
		Dx:      utils.NewMatrix(ngx, ngy),
		Dy:      utils.NewMatrix(ngx, ngy),
		Dz:      dz,
		ZLength: float64(ncz) * dz,
		D1Dx:    utils.NewMatrix(ngx, ngy),
		D1Dy:    utils.NewMatrix(ngx, ngy),
	}
	for i := range m.Dx.DataP {
		m.Dx.DataP[i] = dx
		m.Dy.DataP[i] = dy
	}
	return
}

// Ncz is the number of distinct points on the periodic axis,
// excluding the duplicated wrap point.
func (m *Mesh) Ncz() int { return m.Ngz - 1 }

// DefaultThreads is the worker count used when a configuration leaves
// the thread count unset, clamped later to the traversal index space.
func DefaultThreads() int { return runtime.NumCPU() }
