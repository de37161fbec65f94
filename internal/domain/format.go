package domain

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// formatRule renders one display line for an event. The action argument is
// the capitalized payload action, already derived once per event.
type formatRule func(e Event, action string) (string, error)

// formatRules maps each recognized event type to its formatting rule.
// Types not present here fall through to formatUnknown.
//
// The wording is frozen, quirks included: "Added member to" and
// "Pushed ... to" use "to" where every other line uses "in", WatchEvent
// renders the literal "Starred", and an absent action leaves a leading
// double space rather than inventing a verb.
var formatRules = map[string]formatRule{
	"CommitCommentEvent":            withAction("a commit comment"),
	"CreateEvent":                   withRefType("Created"),
	"DeleteEvent":                   withRefType("Deleted"),
	"ForkEvent":                     literal("Forked a repository"),
	"GollumEvent":                   withAction("a wiki page"),
	"IssueCommentEvent":             withAction("an issue comment"),
	"IssuesEvent":                   withAction("a new issue"),
	"MemberEvent":                   formatMember,
	"PublicEvent":                   formatPublic,
	"PullRequestEvent":              formatPullRequest,
	"PullRequestReviewEvent":        withAction("pull request review"),
	"PullRequestReviewCommentEvent": withAction("pull request review comment"),
	"PullRequestReviewThreadEvent":  formatReviewThread,
	"PushEvent":                     formatPush,
	"ReleaseEvent":                  withAction("a release event"),
	"SponsorshipEvent":              withAction("a sponsorship listing"),
	"WatchEvent":                    formatWatch,
}

// FormatEvents renders one display line per event, in input order.
// Any malformed event aborts the whole run.
func FormatEvents(events []Event) ([]string, error) {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		line, err := FormatEvent(e)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// FormatEvent renders a single event as a display line.
func FormatEvent(e Event) (string, error) {
	if e.Type == "" {
		return "", fmt.Errorf("%w: missing event type", ErrMalformedEvent)
	}
	if e.Repo == "" {
		return "", fmt.Errorf("%w: %s: missing repository name", ErrMalformedEvent, e.Type)
	}
	if len(e.Payload) == 0 {
		return "", fmt.Errorf("%w: %s: missing payload", ErrMalformedEvent, e.Type)
	}

	action, err := e.action()
	if err != nil {
		return "", err
	}

	rule, ok := formatRules[e.Type]
	if !ok {
		rule = formatUnknown
	}
	return rule(e, action)
}

// inRepo applies the generic trailing template.
func inRepo(details, repo string) string {
	return fmt.Sprintf("- %s in %s", details, repo)
}

// withAction builds a rule for the "{action} {noun}" detail shape.
func withAction(noun string) formatRule {
	return func(e Event, action string) (string, error) {
		return inRepo(action+" "+noun, e.Repo), nil
	}
}

// literal builds a rule with fixed details.
func literal(details string) formatRule {
	return func(e Event, _ string) (string, error) {
		return inRepo(details, e.Repo), nil
	}
}

// withRefType builds the rule shared by CreateEvent and DeleteEvent.
func withRefType(verb string) formatRule {
	return func(e Event, _ string) (string, error) {
		var p refPayload
		if err := e.decodePayload(&p); err != nil {
			return "", err
		}
		if p.RefType == "" {
			return "", fmt.Errorf("%w: %s: missing ref_type", ErrMalformedEvent, e.Type)
		}
		return inRepo(verb+" a Git "+p.RefType, e.Repo), nil
	}
}

func formatMember(e Event, action string) (string, error) {
	switch action {
	case "Added":
		// Terminal line, uses "to" instead of "in".
		return fmt.Sprintf("- Added member to %s", e.Repo), nil
	case "Edited":
		return inRepo(action+" changes to the collaborator permissions", e.Repo), nil
	default:
		return inRepo(action+" MemberEvent", e.Repo), nil
	}
}

func formatPublic(e Event, _ string) (string, error) {
	// Terminal line, bypasses the trailing template.
	return fmt.Sprintf("- Private repository %s is made public", e.Repo), nil
}

func formatPullRequest(e Event, action string) (string, error) {
	var p pullRequestPayload
	if err := e.decodePayload(&p); err != nil {
		return "", err
	}
	if p.Number == nil {
		return "", fmt.Errorf("%w: %s: missing number", ErrMalformedEvent, e.Type)
	}
	return inRepo(fmt.Sprintf("%s pull request #%d", action, *p.Number), e.Repo), nil
}

func formatReviewThread(e Event, action string) (string, error) {
	switch action {
	case "Resolved":
		return inRepo("Resolved a comment thread on a pull request", e.Repo), nil
	case "Unresolved":
		return inRepo("Unresolved a previously resolved comment thread on a pull request", e.Repo), nil
	default:
		return formatUnknown(e, action)
	}
}

func formatPush(e Event, _ string) (string, error) {
	var p pushPayload
	if err := e.decodePayload(&p); err != nil {
		return "", err
	}
	if p.Size == nil {
		return "", fmt.Errorf("%w: %s: missing size", ErrMalformedEvent, e.Type)
	}
	// Terminal line, uses "to" instead of "in".
	if *p.Size == 1 {
		return fmt.Sprintf("- Pushed 1 commit to %s", e.Repo), nil
	}
	return fmt.Sprintf("- Pushed %d commits to %s", *p.Size, e.Repo), nil
}

func formatWatch(e Event, action string) (string, error) {
	if action == "Started" {
		return inRepo("Starred", e.Repo), nil
	}
	return formatUnknown(e, action)
}

// formatUnknown is the catch-all for unrecognized event types.
func formatUnknown(e Event, _ string) (string, error) {
	return inRepo("There was a "+e.Type, e.Repo), nil
}

// capitalize upper-cases the first rune only; the rest of the string is
// left unchanged.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
