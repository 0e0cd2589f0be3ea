package deriv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A stencil of a linear profile f(i) = 2 + i (slope 1 per cell).
func linearStencil() Stencil {
	return Stencil{MM: 0, M: 1, C: 2, P: 3, PP: 4}
}

func TestCentralSchemesOnLinearProfile(t *testing.T) {
	s := linearStencil()

	assert.InDelta(t, 1.0, DDXC2(s), 1e-14)
	assert.InDelta(t, 1.0, DDXC4(s), 1e-14)
	assert.InDelta(t, 0.0, D2DX2C2(s), 1e-14)
	assert.InDelta(t, 0.0, D2DX2C4(s), 1e-14)
	assert.InDelta(t, 0.0, D4DX4C2(s), 1e-14)

	// Staggered points sit at half-cell offsets, so the centred pairs
	// still straddle the output by one cell width.
	assert.InDelta(t, 1.0, DDXC2Stag(Stencil{MM: 0.5, M: 1.5, P: 2.5, PP: 3.5}), 1e-14)
	assert.InDelta(t, 1.0, DDXC4Stag(Stencil{MM: 0.5, M: 1.5, P: 2.5, PP: 3.5}), 1e-14)
}

func TestUpwindTruthVectors(t *testing.T) {
	f := Stencil{M: 1, C: 2, P: 4}

	// Positive velocity picks the backward difference (2-1), negative
	// the forward one (4-2).
	assert.Equal(t, 1.0, VDDXU1(Stencil{C: 1}, f))
	assert.Equal(t, -2.0, VDDXU1(Stencil{C: -1}, f))

	// Zero velocity contributes nothing regardless of scheme.
	for name, fn := range map[string]UpwindFunc{
		"U1": VDDXU1, "C2": VDDXC2, "C4": VDDXC4, "U4": VDDXU4, "W3": VDDXWENO3,
	} {
		assert.Zerof(t, fn(Stencil{}, f), "scheme %s with v=0", name)
	}
}

func TestWENODeterminism(t *testing.T) {
	// Identical windows must give bit-identical results; the scheme is
	// pure and its epsilon regularization is a fixed constant.
	f := Stencil{MM: 0.3, M: 1.1, C: 0.9, P: 2.7, PP: 2.5}
	v := Stencil{C: 1.3}

	assert.Equal(t, VDDXWENO3(v, f), VDDXWENO3(v, f))
	assert.Equal(t, DDXCWENO3(f), DDXCWENO3(f))
	assert.Equal(t, DDXCWENO2(f), DDXCWENO2(f))
	assert.Equal(t, FDDXNND(v, f), FDDXNND(v, f))
}

func TestWENO2ReducesOnSmoothData(t *testing.T) {
	// On a smooth (linear) profile the weights balance and the centred
	// estimate dominates.
	assert.InDelta(t, 1.0, DDXCWENO2(linearStencil()), 1e-6)
	assert.InDelta(t, 1.0, DDXCWENO3(linearStencil()), 1e-6)
}

func TestLimiters(t *testing.T) {
	assert.Equal(t, 0.0, minmod(-1.0, 2.0))
	assert.Equal(t, 1.0, minmod(1.0, 2.0))
	assert.Equal(t, -1.0, minmod(-1.0, -2.0))

	assert.Equal(t, 0.0, superbee(-0.5))
	assert.Equal(t, 1.0, superbee(0.5))
	assert.Equal(t, 2.0, superbee(3.0))

	assert.InDelta(t, 1.5, vanLeer(1.0), 1e-14)
	assert.Equal(t, 0.0, vanLeer(0.0))
}

func TestFluxSchemesWithConstantVelocity(t *testing.T) {
	// d/dx(c*f) = c*df/dx for constant velocity.
	var (
		f = Stencil{MM: 0.2, M: 0.7, C: 1.9, P: 2.1, PP: 3.3}
		v = Stencil{MM: 2, M: 2, C: 2, P: 2, PP: 2}
	)
	assert.InDelta(t, 2.0*DDXC2(f), FDDXC2(v, f), 1e-14)
	assert.InDelta(t, 2.0*DDXC4(f), FDDXC4(v, f), 1e-14)
	// The 1st order flux scheme accumulates lower minus upper boundary
	// flux, so it carries the opposite sign to the centred forms.
	assert.InDelta(t, -VDDXU1(v, f), FDDXU1(v, f), 1e-14)
}

func TestStaggeredUpwindCorrection(t *testing.T) {
	// With constant velocity on the faces the correction term vanishes
	// and the advective form is the negated boundary-flux sum.
	var (
		f = Stencil{M: 1, C: 2, P: 4}
		v = Stencil{M: 1.5, P: 1.5}
	)
	assert.Equal(t, -FDDXU1Stag(v, f), VDDXU1Stag(v, f))
}

func TestPPMPlaceholderContributesNothing(t *testing.T) {
	assert.Zero(t, VDDXPPM(Stencil{C: 3}, Stencil{M: 1, C: 2, P: 4}))
}
