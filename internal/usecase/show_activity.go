// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/runoshun/gh-activity/internal/domain"
)

// NoActivityMessage is displayed when the user has no recent events.
const NoActivityMessage = "No recent activity found."

// ShowActivityInput contains the parameters for showing user activity.
type ShowActivityInput struct {
	Username string
}

// ShowActivityOutput contains the display lines for a single run.
// Fields are ordered to minimize memory padding.
type ShowActivityOutput struct {
	Lines     []string
	HasEvents bool // true when Lines describe events rather than a status message
}

// ShowActivity is the use case for fetching and formatting user activity.
type ShowActivity struct {
	fetcher domain.ActivityFetcher
	logger  *slog.Logger
}

// NewShowActivity creates a new ShowActivity use case.
func NewShowActivity(fetcher domain.ActivityFetcher, logger *slog.Logger) *ShowActivity {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ShowActivity{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Execute fetches the user's recent events and renders one display line per
// event, in input order.
//
// A fetch failure is data, not an error: it yields a single "Error: ..."
// line and a nil error, so the process still exits cleanly. A malformed
// event, by contrast, aborts the run with an error wrapping
// domain.ErrMalformedEvent.
func (uc *ShowActivity) Execute(ctx context.Context, in ShowActivityInput) (*ShowActivityOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.ErrEmptyUsername
	}

	events, err := uc.fetcher.Fetch(ctx, username)
	if err != nil {
		uc.logger.Debug("fetch failed", "username", username, "error", err)
		return &ShowActivityOutput{Lines: []string{"Error: " + err.Error()}}, nil
	}
	uc.logger.Debug("fetched events", "username", username, "count", len(events))

	if len(events) == 0 {
		return &ShowActivityOutput{Lines: []string{NoActivityMessage}}, nil
	}

	lines, err := domain.FormatEvents(events)
	if err != nil {
		return nil, err
	}
	return &ShowActivityOutput{Lines: lines, HasEvents: true}, nil
}
