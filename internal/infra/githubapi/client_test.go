package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a stub API server and returns a Client pointed at it.
// The go-github enterprise client prefixes requests with /api/v3/.
func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle("/api/v3/", http.StripPrefix("/api/v3", handler))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := New(context.Background(), Options{Token: token, BaseURL: srv.URL}, nil)
	require.NoError(t, err)
	return client
}

func TestClient_Fetch(t *testing.T) {
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/events", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"type":"PushEvent","repo":{"id":1,"name":"a/b"},"payload":{"size":2}},
			{"type":"WatchEvent","repo":{"id":2,"name":"c/d"},"payload":{"action":"started"}}
		]`)
	})

	events, err := client.Fetch(context.Background(), "octocat")

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "PushEvent", events[0].Type)
	assert.Equal(t, "a/b", events[0].Repo)
	assert.JSONEq(t, `{"size":2}`, string(events[0].Payload))
	assert.Equal(t, "WatchEvent", events[1].Type)
	assert.Equal(t, "c/d", events[1].Repo)
}

func TestClient_Fetch_Unauthenticated(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	events, err := client.Fetch(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestClient_Fetch_HTTPError(t *testing.T) {
	client := newTestClient(t, "secret", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})

	events, err := client.Fetch(context.Background(), "nosuchuser")

	require.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_Fetch_DecodeError(t *testing.T) {
	client := newTestClient(t, "secret", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{not json`)
	})

	_, err := client.Fetch(context.Background(), "octocat")

	require.Error(t, err)
}

func TestClient_Fetch_EmptyPayloadIsPreserved(t *testing.T) {
	// Events without a payload field map to a nil payload; rejecting them
	// is the formatter's decision, not the fetcher's.
	client := newTestClient(t, "secret", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"type":"PublicEvent","repo":{"id":3,"name":"a/b"}}]`)
	})

	events, err := client.Fetch(context.Background(), "octocat")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Nil(t, []byte(events[0].Payload))
}
