package deriv

import "math"

// wenoSmall regularizes the WENO smoothness weights. The value is a
// numerical contract shared with the reference test vectors; changing
// it changes results bit-for-bit.
const wenoSmall = 1.0e-8

func sq(x float64) float64 { return x * x }

/*
 * Limiters
 */

// vanLeer limiter, used by the TVD reconstructions.
func vanLeer(r float64) float64 {
	return r + math.Abs(r)/(1.0+math.Abs(r))
}

// superbee limiter, used by the MUSCL scheme.
func superbee(r float64) float64 {
	return math.Max(0.0, math.Max(math.Min(2.*r, 1.0), math.Min(r, 2.)))
}

func minmod(a, b float64) float64 {
	if a*b <= 0.0 {
		return 0.0
	}
	if math.Abs(a) < math.Abs(b) {
		return a
	}
	return b
}

/*
 * Basic collocated methods. Input and output grid cells are at the
 * same location; dx normalization is applied by the traversal engine.
 */

////////////////////// FIRST DERIVATIVES /////////////////////

// Central, 2nd order
func DDXC2(f Stencil) float64 {
	return 0.5 * (f.P - f.M)
}

// Central, 4th order
func DDXC4(f Stencil) float64 {
	return (8.*f.P - 8.*f.M + f.MM - f.PP) / 12.
}

// Central WENO, 2nd order. Blends left, right and centred estimates by
// smoothness, reverting towards 1st order near discontinuities.
func DDXCWENO2(f Stencil) float64 {
	var (
		dc = 0.5 * (f.P - f.M)
		dl = f.C - f.M
		dr = f.P - f.C

		isl = sq(dl)
		isr = sq(dr)
		isc = (13./3.)*sq(f.P-2.*f.C+f.M) + 0.25*sq(f.P-f.M)

		al = 0.25 / sq(wenoSmall+isl)
		ar = 0.25 / sq(wenoSmall+isr)
		ac = 0.5 / sq(wenoSmall+isc)
	)
	return (al*dl + ar*dr + ac*dc) / (al + ar + ac)
}

// 3rd-order CWENO. Local Lax-Friedrichs flux split fed through the
// upwind-biased WENO3 code.
func DDXCWENO3(f Stencil) float64 {
	ma := math.Abs(f.C)
	for _, v := range [4]float64{f.M, f.P, f.MM, f.PP} {
		if a := math.Abs(v); a > ma {
			ma = a
		}
	}
	var (
		vp = Stencil{C: 0.5}
		vm = Stencil{C: -0.5}
		sp = Stencil{MM: f.MM + ma, M: f.M + ma, C: f.C + ma, P: f.P + ma, PP: f.PP + ma}
		sm = Stencil{MM: ma - f.MM, M: ma - f.M, C: ma - f.C, P: ma - f.P, PP: ma - f.PP}
	)
	return VDDXWENO3(vp, sp) + VDDXWENO3(vm, sm)
}

// Smoothing 2nd order: 4th-order differencing plus a sign-biased
// 4th-difference dissipation term.
func DDXS2(f Stencil) float64 {
	result := (8.*f.P - 8.*f.M + f.MM - f.PP) / 12.
	sign := 1.0
	if f.C <= 0 {
		sign = -1.0
	}
	return result + sign*(f.PP-4.*f.P+6.*f.C-4.*f.M+f.MM)/12.
}

///////////////////// SECOND DERIVATIVES ////////////////////

// Central, 2nd order
func D2DX2C2(f Stencil) float64 {
	return f.P + f.M - 2.*f.C
}

// Central, 4th order
func D2DX2C4(f Stencil) float64 {
	return (-f.PP + 16.*f.P - 30.*f.C + 16.*f.M - f.MM) / 12.
}

///////////////////// FOURTH DERIVATIVE /////////////////////

// Central, 2nd order
func D4DX4C2(f Stencil) float64 {
	return f.PP - 4.*f.P + 6.*f.C - 4.*f.M + f.MM
}

//////////////////////// UPWIND METHODS ///////////////////////

// Central, 2nd order
func VDDXC2(v, f Stencil) float64 {
	return v.C * 0.5 * (f.P - f.M)
}

// Central, 4th order
func VDDXC4(v, f Stencil) float64 {
	return v.C * (8.*f.P - 8.*f.M + f.MM - f.PP) / 12.
}

// Upwind, 1st order: one-sided difference picked by the velocity sign.
func VDDXU1(v, f Stencil) float64 {
	if v.C >= 0.0 {
		return v.C * (f.C - f.M)
	}
	return v.C * (f.P - f.C)
}

// Upwind, 4th order
func VDDXU4(v, f Stencil) float64 {
	if v.C >= 0.0 {
		return v.C * (4.*f.P - 12.*f.M + 2.*f.MM + 6.*f.C) / 12.
	}
	return v.C * (-4.*f.M + 12.*f.P - 2.*f.PP - 6.*f.C) / 12.
}

// 3rd-order upwind-biased WENO.
func VDDXWENO3(v, f Stencil) float64 {
	var deriv, w, r float64
	if v.C > 0.0 {
		// Left-biased window
		r = (wenoSmall + sq(f.C-2.0*f.M+f.MM)) / (wenoSmall + sq(f.P-2.0*f.C+f.M))
		w = 1.0 / (1.0 + 2.0*r*r)
		deriv = 0.5*(f.P-f.M) - 0.5*w*(-f.MM+3.*f.M-3.*f.C+f.P)
	} else {
		// Right-biased
		r = (wenoSmall + sq(f.PP-2.0*f.P+f.C)) / (wenoSmall + sq(f.P-2.0*f.C+f.M))
		w = 1.0 / (1.0 + 2.0*r*r)
		deriv = 0.5*(f.P-f.M) - 0.5*w*(-f.M+3.*f.C-3.*f.P+f.PP)
	}
	return v.C * deriv
}

// VDDXPPM is the declared piecewise-parabolic-method slot. The
// reconstruction was never specified for this engine, so the method
// stays registered but contributes nothing; selecting it is diagnosed
// at bind time.
func VDDXPPM(v, f Stencil) float64 {
	return 0
}

//////////////////////// FLUX METHODS ///////////////////////

// 1st order upwind flux difference.
func FDDXU1(v, f Stencil) float64 {
	// Velocity at the lower cell boundary
	vs := 0.5 * (v.M + v.C)
	result := vs * f.C
	if vs >= 0.0 {
		result = vs * f.M
	}
	// and at the upper
	vs = 0.5 * (v.C + v.P)
	if vs >= 0.0 {
		result -= vs * f.C
	} else {
		result -= vs * f.P
	}
	return result
}

// Central, 2nd order
func FDDXC2(v, f Stencil) float64 {
	return 0.5 * (v.P*f.P - v.M*f.M)
}

// Central, 4th order
func FDDXC4(v, f Stencil) float64 {
	return (8.*v.P*f.P - 8.*v.M*f.M + v.MM*f.MM - v.PP*f.PP) / 12.
}

// Non-oscillatory, No free parameters, Dissipative (NND) scheme:
// positive/negative flux split with minmod-limited left/right
// reconstructions at the two cell boundaries.
func FDDXNND(v, f Stencil) float64 {
	var (
		// f{+-} at i
		fp = 0.5 * (v.C + math.Abs(v.C)) * f.C
		fm = 0.5 * (v.C - math.Abs(v.C)) * f.C

		// f{+-} at i+1
		fp1 = 0.5 * (v.P + math.Abs(v.P)) * f.P
		fm1 = 0.5 * (v.P - math.Abs(v.P)) * f.P

		// f{-} at i+2
		fm2 = 0.5 * (v.PP - math.Abs(v.PP)) * f.PP

		// f{+-} at i-1
		fpm1 = 0.5 * (v.M + math.Abs(v.M)) * f.M
		fmm1 = 0.5 * (v.M - math.Abs(v.M)) * f.M

		// f{+} at i-2
		fpm2 = 0.5 * (v.MM + math.Abs(v.MM)) * f.MM
	)
	// f^{LR} at i+1/2
	flp := fp + 0.5*minmod(fp1-fp, fp-fpm1)
	frp := fm1 - 0.5*minmod(fm1-fm, fm2-fm1)

	// f^{LR} at i-1/2
	flm := fpm1 + 0.5*minmod(fp-fpm1, fpm1-fpm2)
	frm := fm - 0.5*minmod(fm-fmm1, fm1-fm)

	return (flp + frp) - (flm + frm)
}

//////////////////////// MUSCL scheme ///////////////////////

func ddxKTLR(f Stencil) (fLp, fRp, fLm, fRm float64) {
	var (
		phi  = superbee((f.C - f.M) / (f.P - f.C))
		phiM = superbee((f.M - f.MM) / (f.C - f.M))
		phiP = superbee((f.P - f.C) / (f.PP - f.P))
	)
	fLp = f.C + 0.5*phi*(f.P-f.C)
	fRp = f.P - 0.5*phiP*(f.PP-f.P)
	fLm = f.M + 0.5*phiM*(f.C-f.M)
	fRm = f.C - 0.5*phi*(f.P-f.C)
	return
}

// DDXKT evaluates du/dt = d/dx(f) with maximum local velocity vmax
// using Kurganov-Tadmor central reconstruction with superbee limiting.
func DDXKT(f, u Stencil, vmax float64) float64 {
	uLp, uRp, uLm, uRm := ddxKTLR(u)
	fLp, fRp, fLm, fRm := ddxKTLR(f)

	fM := 0.5 * (fRm + fLm - vmax*(uRm-uLm))
	fP := 0.5 * (fRp + fLp - vmax*(uRp-uLp))
	return fM - fP
}

/*
 * Staggered differencing methods. The output location differs from
 * the input: points sit at -3/2, -1/2, +1/2, +3/2 cell widths.
 *
 * Cell widths are defined centre-to-centre for the collocated methods
 * above; that is not accounted for here, so strong cell-size variation
 * degrades the staggered methods.
 */

/////////////////////// FIRST DERIVATIVES //////////////////////
// Map centre -> low or low -> centre

// 2nd order (staggered)
func DDXC2Stag(f Stencil) float64 {
	return f.P - f.M
}

// 4th order (staggered)
func DDXC4Stag(f Stencil) float64 {
	return (27.*(f.P-f.M) - (f.PP - f.MM)) / 24.
}

/////////////////////// SECOND DERIVATIVES //////////////////////

// 4th order (staggered)
func D2DX2C4Stag(f Stencil) float64 {
	return (f.PP + f.MM - f.P - f.M) / 2.
}

/////////////////////////// UPWINDING ///////////////////////////
// Map (low, centre) -> centre or (centre, low) -> low. v carries only
// face samples (M at -1/2, P at +1/2) while f keeps its centre value.

func VDDXU1Stag(v, f Stencil) float64 {
	// Lower cell boundary
	result := v.M * f.C
	if v.M >= 0 {
		result = v.M * f.M
	}
	// Upper cell boundary
	if v.P >= 0 {
		result -= v.P * f.C
	} else {
		result -= v.P * f.P
	}
	result *= -1

	// result is now d/dx(v*f); want v*d/dx(f), so subtract f*d/dx(v)
	result -= f.C * (v.P - v.M)
	return result
}

/////////////////////////// FLUX ///////////////////////////

func FDDXU1Stag(v, f Stencil) float64 {
	// Lower cell boundary
	result := v.M * f.C
	if v.M >= 0 {
		result = v.M * f.M
	}
	// Upper cell boundary
	if v.P >= 0 {
		result -= v.P * f.C
	} else {
		result -= v.P * f.P
	}
	return result
}
