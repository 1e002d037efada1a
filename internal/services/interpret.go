package services

import (
	"context"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/ports"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// How an instruction was turned into a request.
type MatchKind string

const (
	StructuredMatch MatchKind = "structured"
	DelegatedMatch  MatchKind = "delegated"
	Unresolved      MatchKind = "unresolved"
)

// Interpretation pairs a resolved request with the strategy that
// produced it.
type Interpretation struct {
	Kind    MatchKind
	Request domain.ConversionRequest
}

const requestShapeHint = "konversi [koordinat X], [koordinat Y] ke [sistem target]"

// Slot grammar for structured instructions: an optional verb, two
// coordinate tokens (bare signed decimal or a DMS-like token carrying
// a degree mark and an optional hemisphere letter) separated by a
// comma, an optional source clause and a mandatory target clause.
// Indonesian and English keywords are accepted.
var structuredPattern = regexp.MustCompile(
	`(?i)(?:(?:konversi|convert|ubah)\s+)?` +
		`([-+]?\d+\.?\d*|[-+]?\d+°\s*\d+'\s*\d+\.?\d*"?\s*[NSEW]?)` +
		`\s*,\s*` +
		`([-+]?\d+\.?\d*|[-+]?\d+°\s*\d+'\s*\d+\.?\d*"?\s*[NSEW]?)` +
		`\s*(?:(?:dari|from)\s+([\w\s/]+))?` +
		`\s*(?:ke|to)\s+([\w\s/]+)`)

// InterpretRequest turns a free-form instruction into a fully resolved
// ConversionRequest, trying strategies in a fixed order: the slot
// grammar first, then the external text-understanding collaborator
// when one is wired, then failure with a hint of the expected shape.
//
// Requests always leave with resolved CRS identifiers on both ends,
// never display names. An instruction that names no source system gets
// DefaultSourceCRS.
func InterpretRequest(
	ctx context.Context,
	text string,
	catalogue *domain.Catalogue,
	extractor ports.RequestExtractor,
) (Interpretation, error) {
	if req, ok := matchStructured(text, catalogue); ok {
		return Interpretation{Kind: StructuredMatch, Request: req}, nil
	}

	if extractor != nil {
		req, err := delegateExtraction(ctx, text, catalogue, extractor)
		if err == nil {
			return Interpretation{Kind: DelegatedMatch, Request: req}, nil
		}
		if errors.Is(err, domain.ErrCollaboratorUnavailable) {
			return Interpretation{Kind: Unresolved}, err
		}
	}

	return Interpretation{Kind: Unresolved}, fmt.Errorf("%w: gunakan format seperti %q", domain.ErrExtraction, requestShapeHint)
}

// matchStructured applies the slot grammar. Unresolvable system names
// fail the strategy; they never fall back to an arbitrary entry.
func matchStructured(text string, catalogue *domain.Catalogue) (domain.ConversionRequest, bool) {
	m := structuredPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.ConversionRequest{}, false
	}

	rawX := strings.TrimSpace(m[1])
	rawY := strings.TrimSpace(m[2])
	sourceName := strings.TrimSpace(m[3])
	targetName := strings.TrimSpace(m[4])

	sourceCRS := domain.DefaultSourceCRS
	if sourceName != "" {
		entry, ok := catalogue.FindByNamePart(sourceName)
		if !ok {
			return domain.ConversionRequest{}, false
		}
		sourceCRS = entry.Code
	}

	target, ok := catalogue.FindByNamePart(targetName)
	if !ok {
		return domain.ConversionRequest{}, false
	}

	// Notation is inferred per token: a degree mark means DMS, a bare
	// number is decimal degrees, never projected. A pure DMS pair is
	// handed on raw; a mixed pair is resolved here with each token
	// parsed by its own shape, keeping the sign of a bare axis.
	xDMS := strings.Contains(rawX, "°")
	yDMS := strings.Contains(rawY, "°")
	sourceNotation := domain.NotationDD
	switch {
	case xDMS && yDMS:
		sourceNotation = domain.NotationDMS
	case xDMS || yDMS:
		var err error
		if xDMS {
			if rawX, err = dmsDecimalText(rawX); err != nil {
				return domain.ConversionRequest{}, false
			}
		}
		if yDMS {
			if rawY, err = dmsDecimalText(rawY); err != nil {
				return domain.ConversionRequest{}, false
			}
		}
	}

	targetNotation := domain.NotationDD
	if target.Projected {
		targetNotation = domain.NotationProjected
	}

	return domain.ConversionRequest{
		RawX:           rawX,
		RawY:           rawY,
		SourceNotation: sourceNotation,
		SourceCRS:      sourceCRS,
		TargetNotation: targetNotation,
		TargetCRS:      target.Code,
	}, true
}

// dmsDecimalText reparses a degree-marked token as decimal-degrees
// text for a mixed pair handed on as DD.
func dmsDecimalText(token string) (string, error) {
	v, err := domain.DMSToDecimal(token)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}

// delegateExtraction hands the text to the collaborator and validates
// the answer. Partial records are a failed extraction, not a partial
// success. The collaborator's field set names no source system, so the
// default policy applies.
func delegateExtraction(
	ctx context.Context,
	text string,
	catalogue *domain.Catalogue,
	extractor ports.RequestExtractor,
) (domain.ConversionRequest, error) {
	fields, err := extractor.Extract(ctx, text)
	if err != nil {
		return domain.ConversionRequest{}, err
	}

	if fields.XCoord == "" || fields.YCoord == "" ||
		fields.SourceFormat == "" || fields.TargetFormat == "" ||
		fields.TargetCSName == "" {
		return domain.ConversionRequest{}, fmt.Errorf("%w: incomplete extraction", domain.ErrExtraction)
	}

	sourceNotation, err := domain.ParseNotation(fields.SourceFormat)
	if err != nil {
		return domain.ConversionRequest{}, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	targetNotation, err := domain.ParseNotation(fields.TargetFormat)
	if err != nil {
		return domain.ConversionRequest{}, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}

	// The name the collaborator saw wins; the zone is a fallback
	// fragment for vague answers like "UTM" plus zone 49N.
	target, ok := catalogue.FindByNamePart(fields.TargetCSName)
	if !ok && fields.Zone != "" {
		target, ok = catalogue.FindByNamePart(fields.Zone)
	}
	if !ok {
		return domain.ConversionRequest{}, fmt.Errorf("%w: unknown target system %q", domain.ErrExtraction, fields.TargetCSName)
	}

	return domain.ConversionRequest{
		RawX:           fields.XCoord,
		RawY:           fields.YCoord,
		SourceNotation: sourceNotation,
		SourceCRS:      domain.DefaultSourceCRS,
		TargetNotation: targetNotation,
		TargetCRS:      target.Code,
	}, nil
}
