// Package deriv implements the finite-difference and spectral
// differential operators for structured block-decomposed grids: a
// library of differencing schemes, per-axis registries binding scheme
// names to functions, staggered-location resolution, and serial and
// parallel traversal engines.
//
// Four kinds of differencing method are provided:
//
//  1. First derivatives DD* (central differencing)
//  2. Second derivatives D2D*2
//  3. Upwinding VDD* for terms like v*Grad(f)
//  4. Flux methods FDD* (conserving, limiting) for Div(v*f)
package deriv

import "github.com/structgrid/derivops/grid"

// Stencil is the five-point local window along one axis: two samples
// below (MM, M), the centre (C) and two above (P, PP). For staggered
// differencing the points sit at -3/2, -1/2, +1/2, +3/2 cell widths
// from the output location and C keeps the nearest collocated sample.
type Stencil struct {
	MM, M, C, P, PP float64
}

// DerivFunc maps a window to a derivative estimate, not yet divided by
// the cell spacing. A nil DerivFunc bound in a table selects the
// spectral (transform) path instead.
type DerivFunc func(f Stencil) float64

// UpwindFunc is a two-window scheme for advective and flux terms:
// velocity window first, advected field second.
type UpwindFunc func(v, f Stencil) float64

// shiftStag adjusts a plain centred window for a staggered output
// location on the operated axis: the sample set slides a half cell so
// that M and P straddle the output point.
func (s *Stencil) shiftStag(floc, loc grid.Location, faceLoc grid.Location) {
	if loc == grid.Deflt || loc == floc {
		return
	}
	if floc == grid.Centre && loc == faceLoc {
		// Window centred around the lower face
		s.PP, s.P = s.P, s.C
	} else if floc == faceLoc {
		// Window centred around the cell centre
		s.MM, s.M = s.M, s.C
	}
}

// xStencil extracts the window along x at (jx, jy, jz). loc is the
// location of the result being computed; when staggering is enabled
// and it differs from the field's own location the window is shifted.
// Guard cells supply the outermost samples; the traversal region keeps
// jx-2..jx+2 in range.
func xStencil(f *grid.Field3D, jx, jy, jz int, loc grid.Location, stag bool) (s Stencil) {
	var (
		m    = f.Mesh()
		sx   = m.Ngy * m.Ngz
		base = (jx*m.Ngy+jy)*m.Ngz + jz
		d    = f.Data
	)
	s = Stencil{
		MM: d[base-2*sx],
		M:  d[base-sx],
		C:  d[base],
		P:  d[base+sx],
		PP: d[base+2*sx],
	}
	if stag {
		s.shiftStag(f.Location(), loc, grid.XLow)
	}
	return
}

func yStencil(f *grid.Field3D, jx, jy, jz int, loc grid.Location, stag bool) (s Stencil) {
	var (
		m    = f.Mesh()
		sy   = m.Ngz
		base = (jx*m.Ngy+jy)*m.Ngz + jz
		d    = f.Data
	)
	s = Stencil{
		MM: d[base-2*sy],
		M:  d[base-sy],
		C:  d[base],
		P:  d[base+sy],
		PP: d[base+2*sy],
	}
	if stag {
		s.shiftStag(f.Location(), loc, grid.YLow)
	}
	return
}

// zStencil wraps periodically over the Ncz distinct z samples.
func zStencil(f *grid.Field3D, jx, jy, jz int, loc grid.Location, stag bool) (s Stencil) {
	var (
		m    = f.Mesh()
		ncz  = m.Ncz()
		base = (jx*m.Ngy + jy) * m.Ngz
		d    = f.Data
	)
	s = Stencil{
		MM: d[base+(jz-2+2*ncz)%ncz],
		M:  d[base+(jz-1+ncz)%ncz],
		C:  d[base+jz],
		P:  d[base+(jz+1)%ncz],
		PP: d[base+(jz+2)%ncz],
	}
	if stag {
		s.shiftStag(f.Location(), loc, grid.ZLow)
	}
	return
}

// x2Stencil and y2Stencil are the Field2D forms.
func x2Stencil(f *grid.Field2D, jx, jy int, loc grid.Location, stag bool) (s Stencil) {
	s = Stencil{
		MM: f.At(jx-2, jy),
		M:  f.At(jx-1, jy),
		C:  f.At(jx, jy),
		P:  f.At(jx+1, jy),
		PP: f.At(jx+2, jy),
	}
	if stag {
		s.shiftStag(f.Location(), loc, grid.XLow)
	}
	return
}

func y2Stencil(f *grid.Field2D, jx, jy int, loc grid.Location, stag bool) (s Stencil) {
	s = Stencil{
		MM: f.At(jx, jy-2),
		M:  f.At(jx, jy-1),
		C:  f.At(jx, jy),
		P:  f.At(jx, jy+1),
		PP: f.At(jx, jy+2),
	}
	if stag {
		s.shiftStag(f.Location(), loc, grid.YLow)
	}
	return
}
