package domain

import (
	"encoding/json"
	"fmt"
)

// Event is a single record from a user's public activity feed.
// Payload holds the event-type-specific data block as returned by the API;
// it is decoded into a typed per-variant record at formatting time.
// Events are immutable once constructed.
type Event struct {
	Type    string
	Repo    string // "owner/repo"
	Payload json.RawMessage
}

// actionPayload covers the variants whose only formatting input is the
// payload's "action" verb.
type actionPayload struct {
	Action string `json:"action"`
}

// refPayload is the payload shape shared by CreateEvent and DeleteEvent.
type refPayload struct {
	RefType string `json:"ref_type"`
}

// pushPayload carries the commit count of a PushEvent. Size is a pointer so
// an absent field is distinguishable from zero.
type pushPayload struct {
	Size *int `json:"size"`
}

// pullRequestPayload carries the pull request number of a PullRequestEvent.
type pullRequestPayload struct {
	Number *int `json:"number"`
}

// decodePayload unmarshals the event payload into a per-variant record.
func (e Event) decodePayload(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("%w: %s payload: %v", ErrMalformedEvent, e.Type, err)
	}
	return nil
}

// action returns the payload's "action" verb with its first rune
// upper-cased, or the empty string when the payload has no action.
func (e Event) action() (string, error) {
	var p actionPayload
	if err := e.decodePayload(&p); err != nil {
		return "", err
	}
	return capitalize(p.Action), nil
}
