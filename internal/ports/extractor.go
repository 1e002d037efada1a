package ports

import "context"

// Field set a text-understanding collaborator returns for one request.
// Formats take the values DD, DMS or UTM; Zone is optional and names a
// UTM zone such as 48N. There is no source system field: callers apply
// their own default.
type ExtractedFields struct {
	XCoord       string
	YCoord       string
	SourceFormat string
	TargetFormat string
	TargetCSName string
	Zone         string
}

// Port: a boundary for delegating free-text interpretation to an
// external text-understanding service.
type RequestExtractor interface {
	// Extract the conversion fields hidden in free text. Incomplete
	// answers are an error, never a partial result.
	Extract(ctx context.Context, text string) (ExtractedFields, error)
}
