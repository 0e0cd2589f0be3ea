package grid

import "fmt"

// InterpTo moves a field between cell locations with 4th-order centred
// interpolation, the reconciliation step between a derivative's
// computed location and the location a caller asked for. Moving
// between two face locations goes through Centre, so any shift reduces
// to at most one centre<->face hop per axis.
//
// Interior points only are filled for x/y shifts; guard rows of the
// result are left for the boundary subsystem, as with derivatives.
// z shifts wrap periodically and cover every point.
func InterpTo(f *Field3D, loc Location) *Field3D {
	if loc == Deflt || loc == f.loc {
		return f
	}
	if f.loc != Centre && loc != Centre {
		// Face to different face: one hop through centre.
		return InterpTo(InterpTo(f, Centre), loc)
	}

	// Exactly one of f.loc, loc is Centre; the face location names the
	// interpolation axis.
	axis := f.loc
	if axis == Centre {
		axis = loc
	}
	toFace := loc != Centre // centre -> face, else face -> centre

	var (
		m   = f.mesh
		r   = NewField3D(m)
		ncz = m.Ncz()
	)
	r.loc = loc

	// Four-point midpoint weights: (9(a+b) - (c+d))/16 with a, b the
	// samples straddling the target and c, d the next pair out.
	switch axis {
	case XLow:
		for jx := m.Xstart; jx <= m.Xend; jx++ {
			o := 0
			if !toFace {
				o = 1 // face samples sit a half cell below their index
			}
			for jy := 0; jy < m.Ngy; jy++ {
				for jz := 0; jz < m.Ngz; jz++ {
					r.Set(jx, jy, jz, interp4(
						f.At(jx-1+o, jy, jz), f.At(jx+o, jy, jz),
						f.At(jx-2+o, jy, jz), f.At(jx+1+o, jy, jz)))
				}
			}
		}
	case YLow:
		for jx := 0; jx < m.Ngx; jx++ {
			o := 0
			if !toFace {
				o = 1
			}
			for jy := m.Ystart; jy <= m.Yend; jy++ {
				for jz := 0; jz < m.Ngz; jz++ {
					r.Set(jx, jy, jz, interp4(
						f.At(jx, jy-1+o, jz), f.At(jx, jy+o, jz),
						f.At(jx, jy-2+o, jz), f.At(jx, jy+1+o, jz)))
				}
			}
		}
	case ZLow:
		for jx := 0; jx < m.Ngx; jx++ {
			for jy := 0; jy < m.Ngy; jy++ {
				o := 0
				if !toFace {
					o = 1
				}
				for jz := 0; jz < ncz; jz++ {
					jzm := (jz - 1 + o + ncz) % ncz
					jz0 := (jz + o) % ncz
					jzmm := (jz - 2 + o + 2*ncz) % ncz
					jzp := (jz + 1 + o) % ncz
					r.Set(jx, jy, jz, interp4(
						f.At(jx, jy, jzm), f.At(jx, jy, jz0),
						f.At(jx, jy, jzmm), f.At(jx, jy, jzp)))
				}
				r.Set(jx, jy, ncz, r.At(jx, jy, 0))
			}
		}
	default:
		panic(fmt.Sprintf("interp: cannot interpolate %s -> %s", f.loc, loc))
	}
	return r
}

func interp4(a, b, c, d float64) float64 {
	return (9.*(a+b) - (c + d)) / 16.
}
