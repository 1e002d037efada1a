package domain

// Immutable coordinate pair in a CRS's native axis order:
// x is longitude or easting, y is latitude or northing.
// A pair is only meaningful together with a CRS identifier.
type Coordinates struct {
	X float64
	Y float64
}
