package domain

// A fully resolved conversion order: two raw coordinate values, how
// they are written, and the reference systems on both ends. The CRS
// fields hold resolved identifiers, never display names. Requests
// built from free text are only handed over once every field is
// populated.
type ConversionRequest struct {
	RawX           string
	RawY           string
	SourceNotation Notation
	SourceCRS      string
	TargetNotation Notation
	TargetCRS      string
}

// Outcome of one conversion: the transformed pair plus its rendering
// in the requested target notation. Produced per request and not
// retained by the converter itself.
type ConversionResult struct {
	Coordinates Coordinates
	FormattedX  string
	FormattedY  string
	Notation    Notation
}
