package deriv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupFallsBackToTableDefault(t *testing.T) {
	s := Stencil{MM: 0.1, M: 0.5, C: 1.2, P: 1.9, PP: 2.8}

	// NND is not a first-derivative scheme; the miss resolves to the
	// table's first entry rather than failing.
	fn := firstDerivTable.lookupFunc(NND)
	assert.Equal(t, DDXC2(s), fn(s))

	// Same contract on the two-window tables.
	v := Stencil{C: 1}
	up := upwindTable.lookupUpwindFunc(FFT)
	assert.Equal(t, VDDXU1(v, s), up(v, s))
}

func TestResolveLabelWholeMatch(t *testing.T) {
	log := testLogger()

	assert.Equal(t, C2, firstDerivTable.resolveLabel("C2", log))
	assert.Equal(t, C4, firstDerivTable.resolveLabel("c4", log))
	assert.Equal(t, FFT, firstDerivTable.resolveLabel("fft", log))
	assert.Equal(t, NND, fluxTable.resolveLabel("nnd", log))
	assert.Equal(t, Split, fluxTable.resolveLabel("split", log))
}

func TestResolveLabelFirstLetter(t *testing.T) {
	log := testLogger()

	// A bare first letter matches the LAST implemented entry in name
	// table order sharing that letter: "c" on the first-derivative
	// table reaches C4, not C2.
	assert.Equal(t, C4, firstDerivTable.resolveLabel("c", log))
	assert.Equal(t, W3, firstDerivTable.resolveLabel("w", log))
	assert.Equal(t, U4, upwindTable.resolveLabel("u", log))
}

func TestResolveLabelMissUsesDefault(t *testing.T) {
	log := testLogger()

	assert.Equal(t, C2, firstDerivTable.resolveLabel("bogus", log))
	assert.Equal(t, C2, firstDerivTable.resolveLabel("", log))
	assert.Equal(t, Split, fluxTable.resolveLabel("zzz", log))
}

func TestMethodNames(t *testing.T) {
	assert.Equal(t, "C2", C2.String())
	assert.Equal(t, "FFT", FFT.String())
	assert.Equal(t, "SPLIT", Split.String())
	assert.Equal(t, "Second order central", C2.longName())
	assert.Equal(t, "DEFAULT", MethodDefault.String())
}

func TestStaggeredTablesRestrictMethods(t *testing.T) {
	assert.True(t, firstStagDerivTable.isImplemented(C2))
	assert.True(t, firstStagDerivTable.isImplemented(C4))
	assert.False(t, firstStagDerivTable.isImplemented(W3))
	assert.False(t, upwindStagTable.isImplemented(C2))
	assert.True(t, upwindStagTable.isImplemented(U1))
}
