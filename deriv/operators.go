package deriv

import (
	"fmt"
	"log/slog"

	"github.com/structgrid/derivops/grid"
)

// axisFuncs holds the default bindings for one axis: collocated
// (centre->centre or face->face) and staggered (centre<->face)
// variants of each operator kind. A nil first/second derivative means
// the spectral path; a nil flux function means the split fallback.
type axisFuncs struct {
	dd, d2d2   DerivFunc
	vdd, fdd   UpwindFunc
	sdd, sd2d2 DerivFunc
	svdd, sfdd UpwindFunc
}

// Operators is the resolved, immutable derivative engine for one mesh:
// the configured default scheme per axis/kind/layout plus the worker
// pool and per-worker spectral scratch. Construct once with
// NewOperators and share read-only; a single Operators value runs one
// operator invocation at a time (internal parallelism is managed by
// the traversal engine itself).
type Operators struct {
	mesh *grid.Mesh
	log  *slog.Logger

	nthreads int
	fftWork  []fftScratch // one per worker, never shared

	x, y, z axisFuncs
}

// NewOperators binds the differencing methods named in cfg against the
// registry tables. Spectral derivatives are only available along z;
// a configuration that resolves x or y first/second derivatives to FFT
// is rejected here, at initialisation, rather than at call time.
func NewOperators(m *grid.Mesh, cfg Config, log *slog.Logger) (ops *Operators, err error) {
	if log == nil {
		log = slog.Default()
	}
	nthreads := cfg.NumThreads
	if nthreads <= 0 {
		nthreads = grid.DefaultThreads()
	}
	ops = &Operators{
		mesh:     m,
		log:      log,
		nthreads: nthreads,
	}

	log.Info("setting X differencing methods")
	ops.x = bindAxis(cfg.DDX, m.StaggerGrids, log.With("axis", "x"))
	if ops.x.dd == nil || ops.x.d2d2 == nil {
		return nil, fmt.Errorf("deriv: FFT cannot be used in X")
	}

	log.Info("setting Y differencing methods")
	ops.y = bindAxis(cfg.DDY, m.StaggerGrids, log.With("axis", "y"))
	if ops.y.dd == nil || ops.y.d2d2 == nil {
		return nil, fmt.Errorf("deriv: FFT cannot be used in Y")
	}

	log.Info("setting Z differencing methods")
	ops.z = bindAxis(cfg.DDZ, m.StaggerGrids, log.With("axis", "z"))

	ops.fftWork = newFFTScratch(ops.nthreads, m.Ncz())
	return ops, nil
}

// Mesh returns the grid descriptor the operators were built for.
func (ops *Operators) Mesh() *grid.Mesh { return ops.mesh }

// bindAxis resolves one axis's option labels against the eight tables.
func bindAxis(opts AxisOptions, stagger bool, log *slog.Logger) (fns axisFuncs) {
	fns.dd = bindDeriv(firstDerivTable, opts.First, "first", log)
	fns.d2d2 = bindDeriv(secondDerivTable, opts.Second, "second", log)
	fns.vdd = bindUpwind(upwindTable, opts.Upwind, "upwind", log)
	fns.fdd = bindUpwind(fluxTable, opts.Flux, "flux", log)
	if stagger {
		fns.sdd = bindDeriv(firstStagDerivTable, opts.First, "stag. first", log)
		fns.sd2d2 = bindDeriv(secondStagDerivTable, opts.Second, "stag. second", log)
		fns.svdd = bindUpwind(upwindStagTable, opts.Upwind, "stag. upwind", log)
		fns.sfdd = bindUpwind(fluxStagTable, opts.Flux, "stag. flux", log)
	}
	return
}

func bindDeriv(t lookupTable, label, kind string, log *slog.Logger) DerivFunc {
	method := t.resolveLabel(label, log)
	log.Info("bound differencing method",
		"kind", kind, "method", method.longName(), "label", method.String())
	return t.lookupFunc(method)
}

func bindUpwind(t lookupTable, label, kind string, log *slog.Logger) UpwindFunc {
	method := t.resolveLabel(label, log)
	if method == PPM {
		log.Warn("PPM reconstruction is a declared placeholder and contributes nothing",
			"kind", kind)
	}
	log.Info("bound differencing method",
		"kind", kind, "method", method.longName(), "label", method.String())
	return t.lookupUpwindFunc(method)
}

// resolveStagDeriv performs the staggered-location algebra shared by
// the first and second derivative operators along one axis:
//
//   - centre<->face on the operated axis switches to the staggered
//     table and flips the result location,
//   - face input shifting anywhere else still uses the staggered table
//     producing centre,
//   - any other combination asks the caller to interpolate the input
//     to centre and recurse. Recursion terminates because every face
//     location reaches centre in a single interpolation hop.
//
// outloc comes back normalized (Deflt resolved to the input location).
func resolveStagDeriv(stagger bool, inloc, outloc, faceLoc grid.Location,
	def, sdef DerivFunc, tbl, stbl lookupTable) (
	fn DerivFunc, t lookupTable, diffloc, out grid.Location, recurse bool) {

	fn, t, diffloc, out = def, tbl, inloc, outloc
	if stagger && out == grid.Deflt {
		// No shift requested: same as the collocated case
		out = diffloc
	}
	if !stagger || out == inloc {
		return
	}
	switch {
	case (inloc == grid.Centre && out == faceLoc) ||
		(inloc == faceLoc && out == grid.Centre):
		// Shifting on the operated axis: centre -> face or face -> centre
		fn, t = sdef, stbl
		if inloc == grid.Centre {
			diffloc = faceLoc
		} else {
			diffloc = grid.Centre
		}
	case inloc == faceLoc:
		// Off-centre on this axis, shifting somewhere else: produce a
		// centre result first, interpolation reconciles afterwards.
		fn, t = sdef, stbl
		diffloc = grid.Centre
	case inloc != grid.Centre:
		// Off-centre on an unrelated axis: interpolate to centre and
		// run the operator again.
		recurse = true
	}
	return
}

// resolveStagUpwind is the velocity-location variant used by the
// upwind and flux operators: a velocity staggered with respect to the
// advected field selects the staggered table. Combinations outside the
// supported pairs are a fatal location mismatch.
func resolveStagUpwind(stagger bool, vloc, inloc, outloc, faceLoc grid.Location,
	def, sdef UpwindFunc, tbl, stbl lookupTable, opName string) (
	fn UpwindFunc, t lookupTable, diffloc, out grid.Location) {

	fn, t, diffloc, out = def, tbl, inloc, outloc
	if stagger && out == grid.Deflt {
		out = diffloc
	}
	if !stagger || vloc == inloc {
		return
	}
	switch {
	case vloc == faceLoc:
		// Velocity staggered with respect to the advected field
		fn, t = sdef, stbl
		diffloc = grid.Centre
	case vloc == grid.Centre && inloc == faceLoc:
		fn, t = sdef, stbl
		diffloc = faceLoc
	default:
		panic(fmt.Sprintf("deriv %s: unsupported staggering, velocity at %s, field at %s",
			opName, vloc, inloc))
	}
	return
}

// checkShapes panics when the velocity field does not match the
// advected field's sub-domain; a partially computed result must never
// escape to the caller.
func checkShapes(opName string, v, f *grid.Field3D) {
	if v.Mesh() != f.Mesh() || len(v.Data) != len(f.Data) {
		panic(fmt.Sprintf("deriv %s: velocity/field shape mismatch", opName))
	}
}

func checkShapes2D(opName string, v, f *grid.Field2D) {
	if len(v.M.DataP) != len(f.M.DataP) {
		panic(fmt.Sprintf("deriv %s: velocity/field shape mismatch", opName))
	}
}
