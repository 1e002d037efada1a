package ports

import (
	"context"
	"coordinate-converter-service/internal/domain"
)

// Contract for the external reference-system transformation. The
// collaborator owns the geodesy; callers treat it as authoritative and
// never cache or retry around it.
type TransformProvider interface {
	// Reproject one pair from sourceCRS to targetCRS. Coordinates
	// travel in (x=easting/longitude, y=northing/latitude) axis order
	// in both directions.
	Transform(ctx context.Context, coords domain.Coordinates, sourceCRS string, targetCRS string) (domain.Coordinates, error)
}
