package transform

import (
	"context"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// EPSGTransformProvider implements TransformProvider using a
// PROJ-backed transformation service (an epsg.io-style /trans endpoint).
//
// It coordinates:
//   - Mapping EPSG identifiers to the bare srs codes the endpoint expects
//   - A single bounded-timeout request per transform
//   - Classifying collaborator failures into unknown-CRS vs transform faults
//
// The provider is safe for concurrent use.
type EPSGTransformProvider struct {
	session *http.Client
	baseURL string
}

func NewEPSGTransformProvider(baseURL string) *EPSGTransformProvider {
	if baseURL == "" {
		baseURL = "https://epsg.io"
	}

	return &EPSGTransformProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// coordinate tolerates the endpoint returning numbers as JSON strings.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return fmt.Errorf("parse coordinate %q: %w", text, err)
		}
		*c = coordinate(value)
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err == nil {
		*c = coordinate(value)
		return nil
	}

	return fmt.Errorf("coordinate must be a string or number")
}

type transResponse struct {
	X     coordinate `json:"x"`
	Y     coordinate `json:"y"`
	Z     coordinate `json:"z"`
	Error string     `json:"error"`
}

// Reproject one pair through the /trans endpoint.
func (p *EPSGTransformProvider) Transform(
	ctx context.Context,
	coords domain.Coordinates,
	sourceCRS string,
	targetCRS string,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "epsg.Transform")(&err)

	src, err := srsCode(sourceCRS)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: source %q", domain.ErrUnknownCRS, sourceCRS)
	}
	dst, err := srsCode(targetCRS)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: target %q", domain.ErrUnknownCRS, targetCRS)
	}

	q := url.Values{}
	q.Set("x", strconv.FormatFloat(coords.X, 'f', -1, 64))
	q.Set("y", strconv.FormatFloat(coords.Y, 'f', -1, 64))
	q.Set("s_srs", src)
	q.Set("t_srs", dst)
	endpoint := fmt.Sprintf("%s/trans?%s", p.baseURL, q.Encode())

	req, err := p.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", domain.ErrTransformFailed, err)
	}

	resp, err := p.do(req)
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && (he.Code == http.StatusBadRequest || he.Code == http.StatusNotFound) {
			return domain.Coordinates{}, fmt.Errorf("%w: %s -> %s: %v", domain.ErrUnknownCRS, sourceCRS, targetCRS, err)
		}
		return domain.Coordinates{}, fmt.Errorf("%w: %v", domain.ErrTransformFailed, err)
	}
	defer resp.Body.Close()

	var tr transResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: decode response: %v", domain.ErrTransformFailed, err)
	}

	if tr.Error != "" {
		if strings.Contains(strings.ToLower(tr.Error), "srs") {
			return domain.Coordinates{}, fmt.Errorf("%w: %s", domain.ErrUnknownCRS, tr.Error)
		}
		return domain.Coordinates{}, fmt.Errorf("%w: %s", domain.ErrTransformFailed, tr.Error)
	}

	return domain.Coordinates{X: float64(tr.X), Y: float64(tr.Y)}, nil
}

// srsCode strips the EPSG authority prefix; the endpoint expects bare
// numeric codes.
func srsCode(identifier string) (string, error) {
	id := strings.TrimSpace(identifier)
	id = strings.TrimPrefix(id, "EPSG:")
	id = strings.TrimPrefix(id, "epsg:")
	if id == "" {
		return "", errors.New("empty crs identifier")
	}
	return id, nil
}
