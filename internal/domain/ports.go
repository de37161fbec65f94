package domain

import "context"

// ActivityFetcher retrieves a user's recent public events.
type ActivityFetcher interface {
	// Fetch returns the user's recent events in the order the API returned
	// them (reverse-chronological). Any transport, HTTP-status, or decode
	// failure is collapsed into the returned error; the caller treats it
	// as displayable data, not a fault.
	Fetch(ctx context.Context, username string) ([]Event, error)
}
