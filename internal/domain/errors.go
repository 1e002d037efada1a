package domain

import "errors"

// Failure kinds reported to callers. Each one is terminal for the
// single request it occurred in and never fatal to the process.

// ErrAngleParse is returned when a DMS string carries no usable
// numeric tokens.
var ErrAngleParse = errors.New("unparseable dms angle")

// ErrNumericParse is returned when a DD or projected value is not a
// valid number.
var ErrNumericParse = errors.New("unparseable numeric coordinate")

// ErrUnknownCRS is returned when the transform collaborator does not
// recognize a requested reference system identifier.
var ErrUnknownCRS = errors.New("unknown coordinate reference system")

// ErrTransformFailed is returned when the transform collaborator fails
// for any reason other than an unknown identifier.
var ErrTransformFailed = errors.New("coordinate transform failed")

// ErrExtraction is returned when free text cannot be turned into a
// complete conversion request.
var ErrExtraction = errors.New("could not extract a conversion request")

// ErrCollaboratorUnavailable is returned when an optional collaborator
// (extractor, history store) cannot be reached. Direct structured
// conversion does not depend on those collaborators.
var ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
