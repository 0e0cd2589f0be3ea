package deriv

import "github.com/structgrid/derivops/grid"

/*
 * Second derivatives. On a non-uniform grid the plain stencil result
 * picks up a first-derivative correction scaled by the metric's
 * d/di(1/dx) matrix, since the schemes assume constant spacing.
 */

// D2DX2 computes the second x derivative of f. FFT is not available
// in x.
func (ops *Operators) D2DX2(f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	m := ops.mesh
	fn, tbl, diffloc, out, recurse := resolveStagDeriv(m.StaggerGrids, f.Location(), outloc,
		grid.XLow, ops.x.d2d2, ops.x.sd2d2, secondDerivTable, secondStagDerivTable)
	if recurse {
		return ops.D2DX2(grid.InterpTo(f, grid.Centre), outloc, method)
	}
	if method != MethodDefault {
		fn = tbl.lookupFunc(method)
	}
	if fn == nil {
		panic("deriv D2DX2: cannot use FFT for X derivatives")
	}
	result := ops.applyXDiff(f, fn, 2, diffloc)
	if m.NonUniform {
		result.AddScaled2D(grid.NewField2DFrom(m.D1Dx), ops.applyXDiff(f, ops.x.dd, 1, diffloc))
	}
	result.SetLocation(diffloc)
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// D2DY2 computes the second y derivative of f. FFT is not available
// in y.
func (ops *Operators) D2DY2(f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	m := ops.mesh
	fn, tbl, diffloc, out, recurse := resolveStagDeriv(m.StaggerGrids, f.Location(), outloc,
		grid.YLow, ops.y.d2d2, ops.y.sd2d2, secondDerivTable, secondStagDerivTable)
	if recurse {
		return ops.D2DY2(grid.InterpTo(f, grid.Centre), outloc, method)
	}
	if method != MethodDefault {
		fn = tbl.lookupFunc(method)
	}
	if fn == nil {
		panic("deriv D2DY2: cannot use FFT for Y derivatives")
	}
	result := ops.applyYDiff(f, fn, 2, diffloc)
	if m.NonUniform {
		result.AddScaled2D(grid.NewField2DFrom(m.D1Dy), ops.applyYDiff(f, ops.y.dd, 1, diffloc))
	}
	result.SetLocation(diffloc)
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// D2DZ2 computes the second periodic z derivative. The z spacing is
// constant, so no non-uniform correction applies.
func (ops *Operators) D2DZ2(f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	var (
		m       = ops.mesh
		inloc   = f.Location()
		fn      = ops.z.d2d2
		tbl     = secondDerivTable
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
			fn, tbl = ops.z.sd2d2, secondStagDerivTable
			if inloc == grid.Centre {
				diffloc = grid.ZLow
			} else {
				diffloc = grid.Centre
			}
		case inloc == grid.ZLow:
			fn, tbl = ops.z.sd2d2, secondStagDerivTable
			diffloc = grid.Centre
		case inloc != grid.Centre:
			return ops.D2DZ2(grid.InterpTo(f, grid.Centre), outloc, method)
		}
	}
	spectral := method == FFT || (method == MethodDefault && fn == nil)
	if method != MethodDefault && method != FFT {
		fn = tbl.lookupFunc(method)
	}

	var result *grid.Field3D
	if spectral {
		result = ops.applyZFFT(f, 2, zShift(inloc, diffloc), m.Xstart, m.Xend)
	} else {
		result = ops.applyZDiff(f, fn, 2, diffloc, m.Xstart, m.Xend)
	}
	result.SetLocation(diffloc)
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// D2DX22D is the axisymmetric second x derivative, non-uniform
// correction included.
func (ops *Operators) D2DX22D(f *grid.Field2D) *grid.Field2D {
	result := ops.applyXDiff2D(f, ops.x.d2d2, 2, grid.Deflt)
	if ops.mesh.NonUniform {
		corr := ops.applyXDiff2D(f, ops.x.dd, 1, grid.Deflt)
		result.AddInPlace(grid.NewField2DFrom(ops.mesh.D1Dx).Mul(corr))
	}
	return result
}

// D2DY22D is the axisymmetric second y derivative.
func (ops *Operators) D2DY22D(f *grid.Field2D) *grid.Field2D {
	result := ops.applyYDiff2D(f, ops.y.d2d2, 2, grid.Deflt)
	if ops.mesh.NonUniform {
		corr := ops.applyYDiff2D(f, ops.y.dd, 1, grid.Deflt)
		result.AddInPlace(grid.NewField2DFrom(ops.mesh.D1Dy).Mul(corr))
	}
	return result
}

// D2DZ22D is identically zero for axisymmetric fields.
func (ops *Operators) D2DZ22D(f *grid.Field2D) *grid.Field2D {
	return grid.NewField2D(ops.mesh)
}
