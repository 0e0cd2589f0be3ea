package deriv

import "github.com/structgrid/derivops/grid"

/*
 * First derivatives along each axis. Every operator resolves the
 * staggered-location request first, then the method, then hands off to
 * the traversal engine; the computed location is reconciled with the
 * requested one by interpolation at the end.
 */

// DDX computes the x derivative of f. outloc requests the result
// location (Deflt means f's own); method overrides the configured
// default scheme (MethodDefault keeps it). FFT is not available in x.
func (ops *Operators) DDX(f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	m := ops.mesh
	fn, tbl, diffloc, out, recurse := resolveStagDeriv(m.StaggerGrids, f.Location(), outloc,
		grid.XLow, ops.x.dd, ops.x.sdd, firstDerivTable, firstStagDerivTable)
	if recurse {
		return ops.DDX(grid.InterpTo(f, grid.Centre), outloc, method)
	}
	if method != MethodDefault {
		fn = tbl.lookupFunc(method)
	}
	if fn == nil {
		panic("deriv DDX: cannot use FFT for X derivatives")
	}
	result := ops.applyXDiff(f, fn, 1, diffloc).SetLocation(diffloc)
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// DDY computes the y derivative of f. FFT is not available in y.
func (ops *Operators) DDY(f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	m := ops.mesh
	fn, tbl, diffloc, out, recurse := resolveStagDeriv(m.StaggerGrids, f.Location(), outloc,
		grid.YLow, ops.y.dd, ops.y.sdd, firstDerivTable, firstStagDerivTable)
	if recurse {
		return ops.DDY(grid.InterpTo(f, grid.Centre), outloc, method)
	}
	if method != MethodDefault {
		fn = tbl.lookupFunc(method)
	}
	if fn == nil {
		panic("deriv DDY: cannot use FFT for Y derivatives")
	}
	result := ops.applyYDiff(f, fn, 1, diffloc).SetLocation(diffloc)
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// DDZ computes the periodic z derivative. incXBndry extends the
// traversal over the x guard cells, needed when the result feeds an x
// derivative. The spectral path is taken when FFT is requested
// explicitly or is the configured collocated default; a staggered
// centre<->z-low pair under explicit FFT is handled in transform space
// by the half-cell phase shift.
func (ops *Operators) DDZ(f *grid.Field3D, outloc grid.Location, method Method, incXBndry bool) *grid.Field3D {
	var (
		m       = ops.mesh
		inloc   = f.Location()
		fn      = ops.z.dd
		tbl     = firstDerivTable
		diffloc = inloc
		out     = outloc
	)
	if m.StaggerGrids && out == grid.Deflt {
		out = inloc
	}
	if m.StaggerGrids && out != inloc {
		switch {
		case (inloc == grid.Centre && out == grid.ZLow) ||
			(inloc == grid.ZLow && out == grid.Centre):
			fn, tbl = ops.z.sdd, firstStagDerivTable
			if inloc == grid.Centre {
				diffloc = grid.ZLow
			} else {
				diffloc = grid.Centre
			}
		case inloc == grid.ZLow:
			fn, tbl = ops.z.sdd, firstStagDerivTable
			diffloc = grid.Centre
		case inloc != grid.Centre:
			return ops.DDZ(grid.InterpTo(f, grid.Centre), outloc, method, incXBndry)
		}
	}
	spectral := method == FFT || (method == MethodDefault && fn == nil)
	if method != MethodDefault && method != FFT {
		fn = tbl.lookupFunc(method)
	}

	xs, xe := m.Xstart, m.Xend
	if incXBndry {
		xs, xe = 0, m.Ngx-1
	}
	var result *grid.Field3D
	if spectral {
		result = ops.applyZFFT(f, 1, zShift(inloc, diffloc), xs, xe)
	} else {
		result = ops.applyZDiff(f, fn, 1, diffloc, xs, xe)
	}
	result.SetLocation(diffloc)
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// zShift picks the half-cell phase direction for a staggered spectral
// derivative: down for centre -> z-low, up for z-low -> centre.
func zShift(inloc, diffloc grid.Location) float64 {
	switch {
	case inloc == grid.Centre && diffloc == grid.ZLow:
		return -1
	case inloc == grid.ZLow && diffloc == grid.Centre:
		return 1
	}
	return 0
}

/*
 * Axisymmetric (Field2D) forms. Locations are ignored: 2D quantities
 * are metric-like and live at cell centres.
 */

// DDX2D computes the x derivative of an axisymmetric field with the
// configured default scheme.
func (ops *Operators) DDX2D(f *grid.Field2D) *grid.Field2D {
	return ops.applyXDiff2D(f, ops.x.dd, 1, grid.Deflt)
}

// DDY2D computes the y derivative of an axisymmetric field.
func (ops *Operators) DDY2D(f *grid.Field2D) *grid.Field2D {
	return ops.applyYDiff2D(f, ops.y.dd, 1, grid.Deflt)
}

// DDZ2D is identically zero: axisymmetric fields have no z variation.
func (ops *Operators) DDZ2D(f *grid.Field2D) *grid.Field2D {
	return grid.NewField2D(ops.mesh)
}
