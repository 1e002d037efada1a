package transform

import (
	"context"
	"coordinate-converter-service/internal/domain"
	"fmt"
	"sync"
)

// MockTransform fixes the output pair for one CRS pair.
type MockTransform struct {
	SourceCRS, TargetCRS string
	X, Y                 float64
}

type MockTransformProvider struct {
	m     map[string]domain.Coordinates
	mu    sync.Mutex
	calls int
	last  domain.Coordinates
}

func NewMockTransformProvider(transforms []MockTransform) *MockTransformProvider {
	m := make(map[string]domain.Coordinates, len(transforms))
	for _, t := range transforms {
		m[t.SourceCRS+"|"+t.TargetCRS] = domain.Coordinates{X: t.X, Y: t.Y}
	}
	return &MockTransformProvider{m: m}
}

// Unknown CRS pairs fail the way the real collaborator rejects
// unrecognized identifiers.
func (p *MockTransformProvider) Transform(ctx context.Context, coords domain.Coordinates, sourceCRS, targetCRS string) (domain.Coordinates, error) {
	p.mu.Lock()
	p.calls++
	p.last = coords
	p.mu.Unlock()

	out, ok := p.m[sourceCRS+"|"+targetCRS]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%w: %s -> %s", domain.ErrUnknownCRS, sourceCRS, targetCRS)
	}

	return out, nil
}

// Calls reports how many transforms were attempted.
func (p *MockTransformProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// LastCoords reports the pair handed to the most recent transform.
func (p *MockTransformProvider) LastCoords() domain.Coordinates {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
