package deriv

import (
	"math"
	"sync"

	"github.com/structgrid/derivops/grid"
)

// pointFunc computes one (jx, jy) pencil. w identifies the worker so
// per-worker scratch can be indexed without locking.
type pointFunc func(w, jx, jy int)

// xyCursor is the shared traversal state of the parallel engine: a
// single mutex-guarded index pair that workers advance to claim the
// next pencil. Work items are claimed in the same order the serial
// loop visits them, so floating-point results are bit-identical either
// way.
type xyCursor struct {
	mu         sync.Mutex
	jx, jy     int
	xe, ys, ye int
	done       bool
}

func (c *xyCursor) next() (jx, jy int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return
	}
	c.jy++
	if c.jy > c.ye {
		c.jy = c.ys
		c.jx++
		if c.jx > c.xe {
			c.done = true
			return
		}
	}
	return c.jx, c.jy, true
}

// runXY drives work over the inclusive (jx, jy) rectangle. With one
// worker (or a single pencil) it degenerates to the plain nested loop;
// otherwise the first pencil is computed up front so the cursor is
// seeded before any worker reads it.
func (ops *Operators) runXY(xs, xe, ys, ye int, work pointFunc) {
	if xe < xs || ye < ys {
		return
	}
	nw := ops.nthreads
	if n := (xe - xs + 1) * (ye - ys + 1); nw > n {
		nw = n
	}
	if nw <= 1 {
		for jx := xs; jx <= xe; jx++ {
			for jy := ys; jy <= ye; jy++ {
				work(0, jx, jy)
			}
		}
		return
	}

	work(0, xs, ys)
	cur := &xyCursor{jx: xs, jy: ys, xe: xe, ys: ys, ye: ye}
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for {
				jx, jy, ok := cur.next()
				if !ok {
					return
				}
				work(w, jx, jy)
			}
		}(w)
	}
	wg.Wait()
}

// spacingPow raises the cell spacing to the derivative order.
func spacingPow(dd float64, order int) float64 {
	switch order {
	case 1:
		return dd
	case 2:
		return dd * dd
	default:
		return math.Pow(dd, float64(order))
	}
}

/*
 * Single-window traversals. Each walks its axis's interior region,
 * extracts the five-point window (staggered-shifted when the target
 * location differs from the field's), applies fn and divides by the
 * spacing raised to order. Guard cells of the result stay zero.
 */

func (ops *Operators) applyXDiff(f *grid.Field3D, fn DerivFunc, order int, loc grid.Location) *grid.Field3D {
	var (
		m      = ops.mesh
		result = grid.NewField3D(m)
		ncz    = m.Ncz()
		stag   = m.StaggerGrids
	)
	ops.runXY(m.Xstart, m.Xend, 0, m.Ngy-1, func(_, jx, jy int) {
		den := spacingPow(m.Dx.At(jx, jy), order)
		base := (jx*m.Ngy + jy) * m.Ngz
		for jz := 0; jz < ncz; jz++ {
			result.Data[base+jz] = fn(xStencil(f, jx, jy, jz, loc, stag)) / den
		}
	})
	return result
}

func (ops *Operators) applyYDiff(f *grid.Field3D, fn DerivFunc, order int, loc grid.Location) *grid.Field3D {
	var (
		m      = ops.mesh
		result = grid.NewField3D(m)
		ncz    = m.Ncz()
		stag   = m.StaggerGrids
	)
	ops.runXY(m.Xstart, m.Xend, m.Ystart, m.Yend, func(_, jx, jy int) {
		den := spacingPow(m.Dy.At(jx, jy), order)
		base := (jx*m.Ngy + jy) * m.Ngz
		for jz := 0; jz < ncz; jz++ {
			result.Data[base+jz] = fn(yStencil(f, jx, jy, jz, loc, stag)) / den
		}
	})
	return result
}

// applyZDiff takes an explicit x range so z derivatives feeding an x
// derivative can cover the x guard cells too. The z axis is periodic:
// jz = Ncz-1 wraps to 0 and the result's duplicated point is filled.
func (ops *Operators) applyZDiff(f *grid.Field3D, fn DerivFunc, order int, loc grid.Location, xs, xe int) *grid.Field3D {
	var (
		m      = ops.mesh
		result = grid.NewField3D(m)
		ncz    = m.Ncz()
		stag   = m.StaggerGrids
		den    = spacingPow(m.Dz, order)
	)
	ops.runXY(xs, xe, 0, m.Ngy-1, func(_, jx, jy int) {
		base := (jx*m.Ngy + jy) * m.Ngz
		for jz := 0; jz < ncz; jz++ {
			result.Data[base+jz] = fn(zStencil(f, jx, jy, jz, loc, stag)) / den
		}
		result.Data[base+ncz] = result.Data[base]
	})
	return result
}

/*
 * Two-window traversals for upwind and flux operators. The velocity
 * window is extracted at the resolution's differencing location while
 * the advected field keeps its own; only one of the two is shifted for
 * a staggered pair.
 */

func (ops *Operators) applyXUpwind(v, f *grid.Field3D, fn UpwindFunc, loc grid.Location) *grid.Field3D {
	var (
		m      = ops.mesh
		result = grid.NewField3D(m)
		ncz    = m.Ncz()
		stag   = m.StaggerGrids
	)
	ops.runXY(m.Xstart, m.Xend, 0, m.Ngy-1, func(_, jx, jy int) {
		dd := m.Dx.At(jx, jy)
		base := (jx*m.Ngy + jy) * m.Ngz
		for jz := 0; jz < ncz; jz++ {
			vs := xStencil(v, jx, jy, jz, loc, stag)
			fs := xStencil(f, jx, jy, jz, grid.Deflt, stag)
			result.Data[base+jz] = fn(vs, fs) / dd
		}
	})
	return result
}

func (ops *Operators) applyYUpwind(v, f *grid.Field3D, fn UpwindFunc, loc grid.Location) *grid.Field3D {
	var (
		m      = ops.mesh
		result = grid.NewField3D(m)
		ncz    = m.Ncz()
		stag   = m.StaggerGrids
	)
	ops.runXY(m.Xstart, m.Xend, m.Ystart, m.Yend, func(_, jx, jy int) {
		dd := m.Dy.At(jx, jy)
		base := (jx*m.Ngy + jy) * m.Ngz
		for jz := 0; jz < ncz; jz++ {
			vs := yStencil(v, jx, jy, jz, loc, stag)
			fs := yStencil(f, jx, jy, jz, grid.Deflt, stag)
			result.Data[base+jz] = fn(vs, fs) / dd
		}
	})
	return result
}

func (ops *Operators) applyZUpwind(v, f *grid.Field3D, fn UpwindFunc, loc grid.Location) *grid.Field3D {
	var (
		m      = ops.mesh
		result = grid.NewField3D(m)
		ncz    = m.Ncz()
		stag   = m.StaggerGrids
	)
	ops.runXY(m.Xstart, m.Xend, 0, m.Ngy-1, func(_, jx, jy int) {
		base := (jx*m.Ngy + jy) * m.Ngz
		for jz := 0; jz < ncz; jz++ {
			vs := zStencil(v, jx, jy, jz, loc, stag)
			fs := zStencil(f, jx, jy, jz, grid.Deflt, stag)
			result.Data[base+jz] = fn(vs, fs) / m.Dz
		}
		result.Data[base+ncz] = result.Data[base]
	})
	return result
}

/*
 * Field2D traversals. Axisymmetric fields have no z extent, so only x
 * and y forms exist; the region and normalization match the 3D ones.
 */

func (ops *Operators) applyXDiff2D(f *grid.Field2D, fn DerivFunc, order int, loc grid.Location) *grid.Field2D {
	var (
		m      = ops.mesh
		result = grid.NewField2D(m)
		stag   = m.StaggerGrids
	)
	ops.runXY(m.Xstart, m.Xend, 0, m.Ngy-1, func(_, jx, jy int) {
		den := spacingPow(m.Dx.At(jx, jy), order)
		result.Set(jx, jy, fn(x2Stencil(f, jx, jy, loc, stag))/den)
	})
	return result
}

func (ops *Operators) applyYDiff2D(f *grid.Field2D, fn DerivFunc, order int, loc grid.Location) *grid.Field2D {
	var (
		m      = ops.mesh
		result = grid.NewField2D(m)
		stag   = m.StaggerGrids
	)
	ops.runXY(m.Xstart, m.Xend, m.Ystart, m.Yend, func(_, jx, jy int) {
		den := spacingPow(m.Dy.At(jx, jy), order)
		result.Set(jx, jy, fn(y2Stencil(f, jx, jy, loc, stag))/den)
	})
	return result
}

func (ops *Operators) applyXUpwind2D(v, f *grid.Field2D, fn UpwindFunc, loc grid.Location) *grid.Field2D {
	var (
		m      = ops.mesh
		result = grid.NewField2D(m)
		stag   = m.StaggerGrids
	)
	ops.runXY(m.Xstart, m.Xend, 0, m.Ngy-1, func(_, jx, jy int) {
		vs := x2Stencil(v, jx, jy, loc, stag)
		fs := x2Stencil(f, jx, jy, grid.Deflt, stag)
		result.Set(jx, jy, fn(vs, fs)/m.Dx.At(jx, jy))
	})
	return result
}

func (ops *Operators) applyYUpwind2D(v, f *grid.Field2D, fn UpwindFunc, loc grid.Location) *grid.Field2D {
	var (
		m      = ops.mesh
		result = grid.NewField2D(m)
		stag   = m.StaggerGrids
	)
	ops.runXY(m.Xstart, m.Xend, m.Ystart, m.Yend, func(_, jx, jy int) {
		vs := y2Stencil(v, jx, jy, loc, stag)
		fs := y2Stencil(f, jx, jy, grid.Deflt, stag)
		result.Set(jx, jy, fn(vs, fs)/m.Dy.At(jx, jy))
	})
	return result
}
