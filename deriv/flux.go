package deriv

import "github.com/structgrid/derivops/grid"

/*
 * Flux-conserving operators, computing d/di(v * f). The Split method
 * has no window function: it falls back to the non-conservative
 * product-rule form v*df/di + f*dv/di built from the upwind and first
 * derivative operators.
 */

// FDDX computes d/dx(v * f).
func (ops *Operators) FDDX(v, f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	checkShapes("FDDX", v, f)
	m := ops.mesh
	fn, tbl, diffloc, out := resolveStagUpwind(m.StaggerGrids, v.Location(), f.Location(), outloc,
		grid.XLow, ops.x.fdd, ops.x.sfdd, fluxTable, fluxStagTable, "FDDX")
	if method != MethodDefault {
		fn = tbl.lookupUpwindFunc(method)
	}
	if fn == nil {
		adv := ops.VDDX(v, f, outloc, MethodDefault)
		dv := ops.DDX(v, outloc, MethodDefault)
		return adv.AddInPlace(dv.Mul(grid.InterpTo(f, dv.Location())))
	}
	result := ops.applyXUpwind(v, f, fn, diffloc).SetLocation(f.Location())
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// FDDY computes d/dy(v * f).
func (ops *Operators) FDDY(v, f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	checkShapes("FDDY", v, f)
	m := ops.mesh
	fn, tbl, diffloc, out := resolveStagUpwind(m.StaggerGrids, v.Location(), f.Location(), outloc,
		grid.YLow, ops.y.fdd, ops.y.sfdd, fluxTable, fluxStagTable, "FDDY")
	if method != MethodDefault {
		fn = tbl.lookupUpwindFunc(method)
	}
	if fn == nil {
		adv := ops.VDDY(v, f, outloc, MethodDefault)
		dv := ops.DDY(v, outloc, MethodDefault)
		return adv.AddInPlace(dv.Mul(grid.InterpTo(f, dv.Location())))
	}
	result := ops.applyYUpwind(v, f, fn, diffloc).SetLocation(f.Location())
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// FDDZ computes d/dz(v * f) over the periodic axis.
func (ops *Operators) FDDZ(v, f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	checkShapes("FDDZ", v, f)
	m := ops.mesh
	fn, tbl, diffloc, out := resolveStagUpwind(m.StaggerGrids, v.Location(), f.Location(), outloc,
		grid.ZLow, ops.z.fdd, ops.z.sfdd, fluxTable, fluxStagTable, "FDDZ")
	if method != MethodDefault {
		fn = tbl.lookupUpwindFunc(method)
	}
	if fn == nil {
		adv := ops.VDDZ(v, f, outloc, MethodDefault)
		dv := ops.DDZ(v, outloc, MethodDefault, false)
		return adv.AddInPlace(dv.Mul(grid.InterpTo(f, dv.Location())))
	}
	result := ops.applyZUpwind(v, f, fn, diffloc).SetLocation(f.Location())
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

/*
 * Axisymmetric forms.
 */

// FDDX2D computes d/dx(v * f) for axisymmetric fields.
func (ops *Operators) FDDX2D(v, f *grid.Field2D, method Method) *grid.Field2D {
	checkShapes2D("FDDX", v, f)
	fn := ops.x.fdd
	if method != MethodDefault {
		fn = fluxTable.lookupUpwindFunc(method)
	}
	if fn == nil {
		return ops.VDDX2D(v, f, MethodDefault).AddInPlace(ops.DDX2D(v).Mul(f))
	}
	return ops.applyXUpwind2D(v, f, fn, grid.Deflt)
}

// FDDY2D computes d/dy(v * f) for axisymmetric fields.
func (ops *Operators) FDDY2D(v, f *grid.Field2D, method Method) *grid.Field2D {
	checkShapes2D("FDDY", v, f)
	fn := ops.y.fdd
	if method != MethodDefault {
		fn = fluxTable.lookupUpwindFunc(method)
	}
	if fn == nil {
		return ops.VDDY2D(v, f, MethodDefault).AddInPlace(ops.DDY2D(v).Mul(f))
	}
	return ops.applyYUpwind2D(v, f, fn, grid.Deflt)
}

// FDDZ2D is identically zero for axisymmetric fields.
func (ops *Operators) FDDZ2D(v, f *grid.Field2D) *grid.Field2D {
	return grid.NewField2D(ops.mesh)
}
