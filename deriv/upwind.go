package deriv

import "github.com/structgrid/derivops/grid"

/*
 * Advection operators, computing v * d/di(f). Resolution keys off the
 * velocity's location relative to the advected field: a staggered pair
 * selects the staggered table and the velocity window slides onto the
 * cell faces while the field keeps its own samples.
 */

// VDDX computes v * df/dx. The result lives at f's location and is
// interpolated to outloc when they differ.
func (ops *Operators) VDDX(v, f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	checkShapes("VDDX", v, f)
	m := ops.mesh
	fn, tbl, diffloc, out := resolveStagUpwind(m.StaggerGrids, v.Location(), f.Location(), outloc,
		grid.XLow, ops.x.vdd, ops.x.svdd, upwindTable, upwindStagTable, "VDDX")
	if method != MethodDefault {
		fn = tbl.lookupUpwindFunc(method)
	}
	result := ops.applyXUpwind(v, f, fn, diffloc).SetLocation(f.Location())
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// VDDY computes v * df/dy.
func (ops *Operators) VDDY(v, f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	checkShapes("VDDY", v, f)
	m := ops.mesh
	fn, tbl, diffloc, out := resolveStagUpwind(m.StaggerGrids, v.Location(), f.Location(), outloc,
		grid.YLow, ops.y.vdd, ops.y.svdd, upwindTable, upwindStagTable, "VDDY")
	if method != MethodDefault {
		fn = tbl.lookupUpwindFunc(method)
	}
	result := ops.applyYUpwind(v, f, fn, diffloc).SetLocation(f.Location())
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

// VDDZ computes v * df/dz over the periodic axis.
func (ops *Operators) VDDZ(v, f *grid.Field3D, outloc grid.Location, method Method) *grid.Field3D {
	checkShapes("VDDZ", v, f)
	m := ops.mesh
	fn, tbl, diffloc, out := resolveStagUpwind(m.StaggerGrids, v.Location(), f.Location(), outloc,
		grid.ZLow, ops.z.vdd, ops.z.svdd, upwindTable, upwindStagTable, "VDDZ")
	if method != MethodDefault {
		fn = tbl.lookupUpwindFunc(method)
	}
	result := ops.applyZUpwind(v, f, fn, diffloc).SetLocation(f.Location())
	if m.StaggerGrids {
		return grid.InterpTo(result, out)
	}
	return result
}

/*
 * Axisymmetric forms. Output location requests are ignored for now.
 */

// VDDX2D computes v * df/dx for axisymmetric fields.
func (ops *Operators) VDDX2D(v, f *grid.Field2D, method Method) *grid.Field2D {
	checkShapes2D("VDDX", v, f)
	fn := ops.x.vdd
	if method != MethodDefault {
		fn = upwindTable.lookupUpwindFunc(method)
	}
	return ops.applyXUpwind2D(v, f, fn, grid.Deflt)
}

// VDDY2D computes v * df/dy for axisymmetric fields.
func (ops *Operators) VDDY2D(v, f *grid.Field2D, method Method) *grid.Field2D {
	checkShapes2D("VDDY", v, f)
	fn := ops.y.vdd
	if method != MethodDefault {
		fn = upwindTable.lookupUpwindFunc(method)
	}
	return ops.applyYUpwind2D(v, f, fn, grid.Deflt)
}

// VDDZ2D is identically zero: axisymmetric fields have no z variation.
func (ops *Operators) VDDZ2D(v, f *grid.Field2D) *grid.Field2D {
	return grid.NewField2D(ops.mesh)
}
