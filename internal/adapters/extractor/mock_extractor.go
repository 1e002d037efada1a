package extractor

import (
	"context"
	"coordinate-converter-service/internal/ports"
	"sync"
)

// MockExtractor returns a canned answer without talking to any model.
type MockExtractor struct {
	Fields ports.ExtractedFields
	Err    error

	mu    sync.Mutex
	calls int
}

func (m *MockExtractor) Extract(_ context.Context, _ string) (ports.ExtractedFields, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.Err != nil {
		return ports.ExtractedFields{}, m.Err
	}
	return m.Fields, nil
}

// Calls reports how many times Extract was invoked.
func (m *MockExtractor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
