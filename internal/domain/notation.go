package domain

import (
	"fmt"
	"strings"
)

// Identifies how a coordinate pair is written.
// Projected values are plain numbers; no parsing or formatting step
// exists for them beyond numeric validation.
type Notation string

const (
	// Geographic decimal degrees, e.g. -6.917464.
	NotationDD Notation = "DD"
	// Geographic degrees-minutes-seconds text, e.g. 6° 55' 2.87" S.
	NotationDMS Notation = "DMS"
	// Planar easting/northing. Written as UTM in request fields.
	NotationProjected Notation = "UTM"
)

// ParseNotation maps a request field value onto a Notation.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DD":
		return NotationDD, nil
	case "DMS":
		return NotationDMS, nil
	case "UTM":
		return NotationProjected, nil
	}
	return "", fmt.Errorf("unknown notation %q", s)
}
