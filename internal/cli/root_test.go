package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/runoshun/gh-activity/internal/app"
	"github.com/runoshun/gh-activity/internal/domain"
	"github.com/runoshun/gh-activity/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(fetcher domain.ActivityFetcher) *app.Container {
	return &app.Container{
		Fetcher: fetcher,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_PrintsActivity(t *testing.T) {
	fetcher := &testutil.MockFetcher{
		Events: []domain.Event{
			{Type: "WatchEvent", Repo: "a/b", Payload: json.RawMessage(`{"action":"started"}`)},
			{Type: "PushEvent", Repo: "a/b", Payload: json.RawMessage(`{"size":3}`)},
		},
	}

	stdout, _, err := execute(t, newTestContainer(fetcher), "octocat")

	require.NoError(t, err)
	assert.Equal(t, "Output:\n- Starred in a/b\n- Pushed 3 commits to a/b\n", stdout)
	assert.Equal(t, "octocat", fetcher.Username)
}

func TestRootCommand_FetchErrorIsPrintedNotReturned(t *testing.T) {
	fetcher := &testutil.MockFetcher{Err: errors.New("boom")}

	stdout, _, err := execute(t, newTestContainer(fetcher), "octocat")

	require.NoError(t, err)
	assert.Equal(t, "Error: boom\n", stdout)
}

func TestRootCommand_NoActivity(t *testing.T) {
	stdout, _, err := execute(t, newTestContainer(&testutil.MockFetcher{}), "octocat")

	require.NoError(t, err)
	assert.Equal(t, "No recent activity found.\n", stdout)
}

func TestRootCommand_MissingUsername(t *testing.T) {
	fetcher := &testutil.MockFetcher{}

	_, _, err := execute(t, newTestContainer(fetcher))

	require.Error(t, err)
	assert.Equal(t, 0, fetcher.Calls)
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	fetcher := &testutil.MockFetcher{}

	_, _, err := execute(t, newTestContainer(fetcher), "octocat", "extra")

	require.Error(t, err)
	assert.Equal(t, 0, fetcher.Calls)
}

func TestRootCommand_MalformedEventReturnsError(t *testing.T) {
	fetcher := &testutil.MockFetcher{
		Events: []domain.Event{
			{Type: "CreateEvent", Repo: "a/b", Payload: json.RawMessage(`{}`)},
		},
	}

	stdout, _, err := execute(t, newTestContainer(fetcher), "octocat")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedEvent)
	assert.Empty(t, stdout)
}

func TestRootCommand_Version(t *testing.T) {
	stdout, _, err := execute(t, newTestContainer(&testutil.MockFetcher{}), "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "test")
}
