// Package testutil provides shared test helpers for building dictionary
// service payloads and fake endpoints.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// EntryOption configures optional fields of a definition entry fixture.
type EntryOption func(map[string]any)

// WithSoundURLs sets the entry's sound sample URLs.
func WithSoundURLs(urls ...string) EntryOption {
	return func(entry map[string]any) {
		entry["sound_urls"] = urls
	}
}

// WithWrittenOn overrides the entry's written_on timestamp string.
func WithWrittenOn(writtenOn string) EntryOption {
	return func(entry map[string]any) {
		entry["written_on"] = writtenOn
	}
}

// WithField sets an arbitrary extra field on the entry, for exercising
// raw-data preservation.
func WithField(key string, value any) EntryOption {
	return func(entry map[string]any) {
		entry[key] = value
	}
}

// Entry builds one definition entry in the service's wire format with
// deterministic defaults derived from the word.
func Entry(word string, opts ...EntryOption) map[string]any {
	entry := map[string]any{
		"word":        word,
		"definition":  "definition of " + word,
		"example":     "example with " + word,
		"author":      "author-of-" + word,
		"permalink":   "https://urbanup.example/" + word,
		"thumbs_up":   5,
		"thumbs_down": 1,
		"sound_urls":  []string{},
		"written_on":  "2020-01-01T00:00:00.000000Z",
	}
	for _, opt := range opts {
		opt(entry)
	}
	return entry
}

// ListBody marshals entries into the {"list": [...]} body the lookup
// endpoint returns.
func ListBody(t *testing.T, entries ...map[string]any) []byte {
	t.Helper()

	if entries == nil {
		entries = []map[string]any{}
	}
	body, err := json.Marshal(map[string]any{"list": entries})
	require.NoError(t, err)
	return body
}

// NewDefineServer starts a fake lookup endpoint that answers every request
// with the given entries. The server is closed when the test ends.
func NewDefineServer(t *testing.T, entries ...map[string]any) *httptest.Server {
	t.Helper()

	body := ListBody(t, entries...)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write(body)
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server
}
