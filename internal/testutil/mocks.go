// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"

	"github.com/runoshun/gh-activity/internal/domain"
)

// MockFetcher is a test double for domain.ActivityFetcher.
// Fields are ordered to minimize memory padding.
type MockFetcher struct {
	Events   []domain.Event
	Err      error
	Username string // last username requested
	Calls    int
}

// Fetch returns the configured events or error.
func (m *MockFetcher) Fetch(_ context.Context, username string) ([]domain.Event, error) {
	m.Calls++
	m.Username = username
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Events, nil
}
