// Package githubapi provides the GitHub-backed activity fetcher.
package githubapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/runoshun/gh-activity/internal/domain"
)

// Ensure Client implements domain.ActivityFetcher.
var _ domain.ActivityFetcher = (*Client)(nil)

// acceptHeader is the media type sent on every API request. The SDK
// defaults to the versioned vnd.github.v3+json type; the events endpoint
// contract is the unversioned one.
const acceptHeader = "application/vnd.github+json"

// acceptTransport pins the Accept header on every outgoing request.
type acceptTransport struct {
	base http.RoundTripper
}

func (t *acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", acceptHeader)
	return t.base.RoundTrip(req)
}

// withAcceptHeader wraps the client's transport with acceptTransport.
func withAcceptHeader(c *http.Client) *http.Client {
	base := c.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *c
	wrapped.Transport = &acceptTransport{base: base}
	return &wrapped
}

// Client fetches user activity from the GitHub REST API.
type Client struct {
	gh     *gh.Client
	logger *slog.Logger
}

// Options configure the GitHub client.
type Options struct {
	Token   string // bearer token; empty means unauthenticated
	BaseURL string // API base URL override (GitHub Enterprise, tests)
}

// New creates a new Client. An empty token is not an error: the request is
// sent unauthenticated and any rejection surfaces as a fetch failure.
func New(ctx context.Context, opts Options, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	httpClient := http.DefaultClient
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	httpClient = withAcceptHeader(httpClient)

	client := gh.NewClient(httpClient)
	if opts.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("configure api base url: %w", err)
		}
	}

	return &Client{gh: client, logger: logger}, nil
}

// Fetch performs a single GET of /users/{username}/events and maps the
// response to domain events. The endpoint's first page is the contract;
// pagination is not followed.
func (c *Client) Fetch(ctx context.Context, username string) ([]domain.Event, error) {
	events, _, err := c.gh.Activity.ListEventsPerformedByUser(ctx, username, false, nil)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("listed user events", "username", username, "count", len(events))

	out := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		// GetRawPayload returns an empty non-nil slice when the API omits
		// the payload field; normalize to nil so the formatter sees a
		// missing payload, not an undecodable one.
		payload := ev.GetRawPayload()
		if len(payload) == 0 {
			payload = nil
		}
		out = append(out, domain.Event{
			Type:    ev.GetType(),
			Repo:    ev.GetRepo().GetName(),
			Payload: payload,
		})
	}
	return out, nil
}
