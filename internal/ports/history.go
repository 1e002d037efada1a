package ports

import "context"

// One persisted conversion turn. Timestamps are assigned by the store.
type ConversionRecord struct {
	UserQuery       string
	OriginalCoords  string
	ConvertedCoords string
	SourceCRS       string
	TargetCRS       string
}

// Port: a boundary for appending conversion records. Append-only; the
// converter never reads records back.
type ConversionHistory interface {
	Append(ctx context.Context, rec ConversionRecord) error
}
