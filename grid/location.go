package grid

// Location identifies where on a grid cell a field's values live.
// Centre is the collocated arrangement; the *Low locations are the
// staggered face positions, one per axis, shifted a half cell below
// the cell centre along that axis.
type Location uint8

const (
	Deflt Location = iota // "don't care" / use the default
	Centre
	XLow
	YLow
	ZLow
)

var locationNames = map[Location]string{
	Deflt:  "default",
	Centre: "centre",
	XLow:   "x-low",
	YLow:   "y-low",
	ZLow:   "z-low",
}

func (l Location) String() (txt string) {
	var ok bool
	if txt, ok = locationNames[l]; !ok {
		txt = "unknown"
	}
	return
}

// IsFace reports whether l is one of the staggered face locations.
func (l Location) IsFace() bool {
	return l == XLow || l == YLow || l == ZLow
}
