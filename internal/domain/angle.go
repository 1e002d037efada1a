package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	dmsNumbers   = regexp.MustCompile(`[-+]?\d+\.?\d*`)
	dmsSouthWest = regexp.MustCompile(`(?i)[sw]`)
)

// DMSToDecimal converts degrees-minutes-seconds text such as
// `6° 55' 38.87" S` into signed decimal degrees. Scanning is
// permissive: only the numeric tokens matter (degree, minute and
// second marks are optional), a comma is accepted as decimal
// separator, and missing minutes or seconds default to zero.
// The hemisphere letter alone controls the sign. A leading minus on
// the degrees token is discarded, so `-6° 30'` reads as +6.5 while
// `6° 30' S` reads as -6.5.
func DMSToDecimal(text string) (float64, error) {
	normalized := strings.ReplaceAll(text, ",", ".")
	tokens := dmsNumbers.FindAllString(normalized, 3)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: no numeric part in %q", ErrAngleParse, text)
	}

	var parts [3]float64
	for i, token := range tokens {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: token %q in %q", ErrAngleParse, token, text)
		}
		parts[i] = v
	}

	dd := math.Abs(parts[0]) + parts[1]/60 + parts[2]/3600
	if dmsSouthWest.MatchString(text) {
		dd = -dd
	}
	return dd, nil
}

// FormatDMS renders decimal degrees as text like `6° 55' 29.28" S`.
// Degrees and minutes truncate toward zero, seconds keep exactly two
// decimals, and the hemisphere letter carries the sign: E/W for
// longitude, N/S for latitude.
func FormatDMS(value float64, isLongitude bool) string {
	degrees := math.Trunc(value)
	minutesFloat := (math.Abs(value) - math.Abs(degrees)) * 60
	minutes := math.Trunc(minutesFloat)
	seconds := (minutesFloat - minutes) * 60

	letter := "N"
	if isLongitude {
		letter = "E"
		if value < 0 {
			letter = "W"
		}
	} else if value < 0 {
		letter = "S"
	}

	return fmt.Sprintf("%d° %d' %.2f\" %s", int(math.Abs(degrees)), int(minutes), seconds, letter)
}
