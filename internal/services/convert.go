package services

import (
	"context"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/platform/obs"
	"coordinate-converter-service/internal/ports"
	"fmt"
	"strconv"
	"strings"
)

// Convert runs one conversion end to end: normalize the raw pair to
// decimal numbers, hand it to the transform provider, and format the
// answer in the requested notation.
//
// The pipeline stops at the first failure. There is no partial result
// and no retry; resubmitting is the caller's decision.
func Convert(
	ctx context.Context,
	req domain.ConversionRequest,
	provider ports.TransformProvider,
) (_ domain.ConversionResult, err error) {
	defer obs.Time(ctx, "services.Convert")(&err)

	coords, err := normalize(req)
	if err != nil {
		return domain.ConversionResult{}, err
	}

	out, err := provider.Transform(ctx, coords, req.SourceCRS, req.TargetCRS)
	if err != nil {
		return domain.ConversionResult{}, fmt.Errorf("convert %s to %s: %w", req.SourceCRS, req.TargetCRS, err)
	}

	return formatResult(out, req.TargetNotation), nil
}

// normalize parses the raw pair according to the source notation. DMS
// axes are parsed independently, so a mixed pair like a DMS latitude
// with a bare decimal longitude still comes through.
func normalize(req domain.ConversionRequest) (domain.Coordinates, error) {
	if req.SourceNotation == domain.NotationDMS {
		x, err := domain.DMSToDecimal(req.RawX)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("x coordinate: %w", err)
		}
		y, err := domain.DMSToDecimal(req.RawY)
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("y coordinate: %w", err)
		}
		return domain.Coordinates{X: x, Y: y}, nil
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(req.RawX), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: x %q", domain.ErrNumericParse, req.RawX)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(req.RawY), 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: y %q", domain.ErrNumericParse, req.RawY)
	}
	return domain.Coordinates{X: x, Y: y}, nil
}

// formatResult renders the transformed pair. DMS treats x as longitude
// and y as latitude; everything else prints six decimal places.
func formatResult(out domain.Coordinates, notation domain.Notation) domain.ConversionResult {
	res := domain.ConversionResult{Coordinates: out, Notation: notation}
	if notation == domain.NotationDMS {
		res.FormattedX = domain.FormatDMS(out.X, true)
		res.FormattedY = domain.FormatDMS(out.Y, false)
		return res
	}
	res.FormattedX = strconv.FormatFloat(out.X, 'f', 6, 64)
	res.FormattedY = strconv.FormatFloat(out.Y, 'f', 6, 64)
	return res
}
