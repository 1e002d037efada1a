package extractor

import (
	"context"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/platform/obs"
	"coordinate-converter-service/internal/ports"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// extractTimeout bounds one model call; expiry is an ordinary
// collaborator failure, never retried here.
const extractTimeout = 30 * time.Second

// extractionInstruction fixes the contract with the model: the exact
// field set, the allowed format values, and a JSON-only reply.
const extractionInstruction = `Extract a spatial coordinate conversion request from the user's message.
Reply with a single JSON object holding exactly these keys:
"x_coord": the X coordinate (longitude or easting) as the user wrote it,
"y_coord": the Y coordinate (latitude or northing) as the user wrote it,
"source_format": one of DD, DMS, UTM,
"target_format": one of DD, DMS, UTM,
"target_cs_name": the target coordinate system name as the user wrote it,
"zone": the UTM zone such as 48N when one is named, else an empty string.
Use an empty string for anything the message does not state.
Return ONLY the JSON object, no code fences, no commentary.
Messages may be written in Indonesian or English.`

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"x_coord":        {Type: genai.TypeString},
		"y_coord":        {Type: genai.TypeString},
		"source_format":  {Type: genai.TypeString},
		"target_format":  {Type: genai.TypeString},
		"target_cs_name": {Type: genai.TypeString},
		"zone":           {Type: genai.TypeString},
	},
	Required: []string{"x_coord", "y_coord", "source_format", "target_format", "target_cs_name"},
}

// ExtractionCache stores collaborator answers keyed by the normalized
// query text.
type ExtractionCache interface {
	Get(ctx context.Context, query string) (ports.ExtractedFields, bool, error)
	Put(ctx context.Context, query string, fields ports.ExtractedFields) error
}

// GeminiExtractor implements RequestExtractor using the Gemini API.
// Responses are schema-constrained JSON; a fence strip still runs
// before parsing for models that wrap their output anyway.
//
// An optional cache keeps answers for repeated queries; cache trouble
// never blocks extraction. The extractor is safe for concurrent use.
type GeminiExtractor struct {
	client *genai.Client
	model  string
	cache  ExtractionCache
}

func NewGeminiExtractor(ctx context.Context, apiKey, model string, cache ExtractionCache) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini api key is empty", domain.ErrCollaboratorUnavailable)
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create genai client: %v", domain.ErrCollaboratorUnavailable, err)
	}

	return &GeminiExtractor{client: client, model: model, cache: cache}, nil
}

// normalizeQuery collapses whitespace so equivalent queries share one
// cache key.
func normalizeQuery(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Extract asks the model for the conversion fields hidden in text.
func (g *GeminiExtractor) Extract(ctx context.Context, text string) (_ ports.ExtractedFields, err error) {
	defer obs.Time(ctx, "gemini.Extract")(&err)

	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	query := normalizeQuery(text)

	if g.cache != nil {
		fields, ok, err := g.cache.Get(ctx, query)
		if err != nil {
			log.Printf("extraction cache read failed: %v", err)
		} else if ok {
			return fields, nil
		}
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(extractionInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema,
		Temperature:       genai.Ptr[float32](0),
	})
	if err != nil {
		return ports.ExtractedFields{}, fmt.Errorf("%w: gemini: %v", domain.ErrCollaboratorUnavailable, err)
	}

	fields, err := parseExtraction(resp.Text())
	if err != nil {
		return ports.ExtractedFields{}, err
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, query, fields); err != nil {
			log.Printf("extraction cache write failed: %v", err)
		}
	}

	return fields, nil
}

type extractionPayload struct {
	XCoord       string `json:"x_coord"`
	YCoord       string `json:"y_coord"`
	SourceFormat string `json:"source_format"`
	TargetFormat string `json:"target_format"`
	TargetCSName string `json:"target_cs_name"`
	Zone         string `json:"zone"`
}

// parseExtraction turns raw model text into the port's field set.
// Incomplete answers fail; a partial record is never handed on.
func parseExtraction(raw string) (ports.ExtractedFields, error) {
	cleaned := cleanJSONResponse(raw)
	if cleaned == "" {
		return ports.ExtractedFields{}, fmt.Errorf("%w: empty model response", domain.ErrExtraction)
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return ports.ExtractedFields{}, fmt.Errorf("%w: malformed model response: %v", domain.ErrExtraction, err)
	}

	fields := ports.ExtractedFields{
		XCoord:       strings.TrimSpace(payload.XCoord),
		YCoord:       strings.TrimSpace(payload.YCoord),
		SourceFormat: strings.TrimSpace(payload.SourceFormat),
		TargetFormat: strings.TrimSpace(payload.TargetFormat),
		TargetCSName: strings.TrimSpace(payload.TargetCSName),
		Zone:         strings.TrimSpace(payload.Zone),
	}

	if fields.XCoord == "" || fields.YCoord == "" ||
		fields.SourceFormat == "" || fields.TargetFormat == "" ||
		fields.TargetCSName == "" {
		return ports.ExtractedFields{}, fmt.Errorf("%w: incomplete field set from model", domain.ErrExtraction)
	}

	return fields, nil
}

// cleanJSONResponse strips the markdown code fences some models wrap
// around JSON output.
func cleanJSONResponse(resp string) string {
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")
	return strings.TrimSpace(resp)
}
