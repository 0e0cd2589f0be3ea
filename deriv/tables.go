package deriv

import (
	"log/slog"
	"strings"
)

// Method identifies a differencing scheme. The identifier space is
// shared across the four operator kinds; each registry table lists the
// subset it implements.
type Method uint8

const (
	MethodDefault Method = iota // use the configured default
	U1                          // First order upwinding
	C2                          // Second order central
	W2                          // Second order WENO
	W3                          // Third order WENO
	C4                          // Fourth order central
	U4                          // Fourth order upwinding
	S2                          // Smoothing 2nd order
	FFT                         // Spectral (transform) derivative
	NND                         // NND flux
	Split                       // Split into upwind and central
	PPM                         // Piecewise Parabolic Method (placeholder)
)

// nameEntry ties a Method to its short label and descriptive name.
type nameEntry struct {
	method Method
	label  string // short name, e.g. "C2"
	name   string // long name
}

// methodNameTable is shared by every registry for label resolution.
var methodNameTable = []nameEntry{
	{U1, "U1", "First order upwinding"},
	{C2, "C2", "Second order central"},
	{W2, "W2", "Second order WENO"},
	{W3, "W3", "Third order WENO"},
	{C4, "C4", "Fourth order central"},
	{U4, "U4", "Fourth order upwinding"},
	{S2, "S2", "Smoothing 2nd order"},
	{FFT, "FFT", "FFT"},
	{NND, "NND", "NND"},
	{Split, "SPLIT", "Split into upwind and central"},
	{PPM, "PPM", "Piecewise Parabolic Method"},
}

func (m Method) String() string {
	for _, e := range methodNameTable {
		if e.method == m {
			return e.label
		}
	}
	return "DEFAULT"
}

// longName is used for the bind-time diagnostics.
func (m Method) longName() string {
	for _, e := range methodNameTable {
		if e.method == m {
			return e.name
		}
	}
	return "== INVALID DIFFERENTIAL METHOD =="
}

// tableEntry binds a Method to its function: deriv for single-window
// kinds, upwind for two-window kinds. A present entry with a nil
// function is meaningful: nil deriv selects the spectral path, nil
// upwind selects the split-flux fallback.
type tableEntry struct {
	method Method
	deriv  DerivFunc
	upwind UpwindFunc
}

// lookupTable is an ordered entry list. Order matters: a lookup that
// misses falls back to the FIRST entry, which is the table's declared
// default. That fallback is a contract, not an error path.
type lookupTable []tableEntry

// First derivative lookup table
var firstDerivTable = lookupTable{
	{C2, DDXC2, nil},
	{W2, DDXCWENO2, nil},
	{W3, DDXCWENO3, nil},
	{C4, DDXC4, nil},
	{S2, DDXS2, nil},
	{FFT, nil, nil},
}

// Second derivative lookup table
var secondDerivTable = lookupTable{
	{C2, D2DX2C2, nil},
	{C4, D2DX2C4, nil},
	{FFT, nil, nil},
}

// Upwinding functions lookup table
var upwindTable = lookupTable{
	{U1, nil, VDDXU1},
	{C2, nil, VDDXC2},
	{U4, nil, VDDXU4},
	{W3, nil, VDDXWENO3},
	{C4, nil, VDDXC4},
	{PPM, nil, VDDXPPM},
}

// Flux functions lookup table
var fluxTable = lookupTable{
	{Split, nil, nil},
	{U1, nil, FDDXU1},
	{C2, nil, FDDXC2},
	{C4, nil, FDDXC4},
	{NND, nil, FDDXNND},
}

// Staggered lookups
var firstStagDerivTable = lookupTable{
	{C2, DDXC2Stag, nil},
	{C4, DDXC4Stag, nil},
}

var secondStagDerivTable = lookupTable{
	{C4, D2DX2C4Stag, nil},
}

var upwindStagTable = lookupTable{
	{U1, nil, VDDXU1Stag},
}

var fluxStagTable = lookupTable{
	{Split, nil, nil},
	{U1, nil, FDDXU1Stag},
}

// lookupFunc returns the single-window function for method, falling
// back to the table's first entry on a miss.
func (t lookupTable) lookupFunc(method Method) DerivFunc {
	for _, e := range t {
		if e.method == method {
			return e.deriv
		}
	}
	return t[0].deriv
}

// lookupUpwindFunc is the two-window counterpart of lookupFunc.
func (t lookupTable) lookupUpwindFunc(method Method) UpwindFunc {
	for _, e := range t {
		if e.method == method {
			return e.upwind
		}
	}
	return t[0].upwind
}

// isImplemented reports whether method has an entry in t.
func (t lookupTable) isImplemented(method Method) bool {
	for _, e := range t {
		if e.method == method {
			return true
		}
	}
	return false
}

// resolveLabel translates a configuration string to a Method for t.
// Matching is case-insensitive: a whole-label match wins, otherwise
// the last name-table method implemented in t whose label starts with
// the same letter, otherwise t's first entry with a diagnostic.
// Used at initialisation only, so it doesn't need to be fast.
func (t lookupTable) resolveLabel(label string, log *slog.Logger) Method {
	if label == "" {
		return t[0].method
	}
	matchtype := MethodDefault
	for _, e := range methodNameTable {
		if !t.isImplemented(e.method) {
			continue
		}
		if strings.EqualFold(label, e.label) {
			return e.method // whole match
		}
		if strings.EqualFold(label[:1], e.label[:1]) {
			matchtype = e.method
		}
	}
	if matchtype == MethodDefault {
		matchtype = t[0].method
		log.Warn("no method matches label, using table default",
			"label", label, "method", matchtype.String())
	} else {
		log.Info("method matched by first letter",
			"label", label, "method", matchtype.String())
	}
	return matchtype
}
