// Package urbandict is a client for the crowd-sourced Urban Dictionary API.
// It fetches word definitions, exposes them as read-only records, and can
// submit new definitions back to the service.
//
// The package is unofficial and may stop working if the upstream API changes.
package urbandict

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"resty.dev/v3"
)

// DefaultBaseURL is the public dictionary endpoint.
const DefaultBaseURL = "https://api.urbandictionary.com/v0"

type Client struct {
	httpClient *resty.Client
}

// NewClient creates a client against the given base URL. An empty baseURL
// uses DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)

	return &Client{
		httpClient: client,
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Define fetches the definition at the given position within the service's
// result list for word. The returned record keeps that position as its Index.
// It fails with *NotFoundError when the word has no definitions at all, which
// takes priority over any index check, and with *OutOfScopeError when index
// is negative or past the end of the list.
func (c *Client) Define(ctx context.Context, word string, index int) (Definition, error) {
	list, err := c.fetchList(ctx, word)
	if err != nil {
		return Definition{}, err
	}
	if index < 0 || index >= len(list) {
		return Definition{}, &OutOfScopeError{Word: word, Index: index}
	}

	definition, err := newDefinition(list[index], index)
	if err != nil {
		return Definition{}, fmt.Errorf("word: %s. newDefinition > %w", word, err)
	}
	return definition, nil
}

// DefineAll fetches every definition for word in service order. The returned
// slice is fully materialized; each record's Index equals its position. It
// fails with *NotFoundError when the word has no definitions.
func (c *Client) DefineAll(ctx context.Context, word string) ([]Definition, error) {
	list, err := c.fetchList(ctx, word)
	if err != nil {
		return nil, err
	}

	definitions := make([]Definition, 0, len(list))
	for i, raw := range list {
		definition, err := newDefinition(raw, i)
		if err != nil {
			return nil, fmt.Errorf("word: %s. newDefinition > %w", word, err)
		}
		definitions = append(definitions, definition)
	}
	return definitions, nil
}

func (c *Client) fetchList(ctx context.Context, word string) ([]json.RawMessage, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("term", word).
		Get("/define")
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if res.IsError() {
		return nil, &TransportError{Word: word, StatusCode: res.StatusCode()}
	}

	var response defineResponse
	if err := json.Unmarshal(res.Bytes(), &response); err != nil {
		return nil, fmt.Errorf("word: %s. json.Unmarshal > %w", word, err)
	}
	if len(response.List) == 0 {
		return nil, &NotFoundError{Word: word}
	}

	slog.Default().Debug("fetched definitions",
		"word", word,
		"count", len(response.List),
	)
	return response.List, nil
}

// Submission holds the fields of a new definition to send to the service.
type Submission struct {
	Word       string
	Definition string
	Example    string
	Tags       []string
	// GiphyURL is optional and transmitted as an empty field when unset.
	GiphyURL string
}

// Submit posts a new definition. Success is the absence of an error; the
// service's response body is not parsed.
func (c *Client) Submit(ctx context.Context, submission Submission) error {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"term":       submission.Word,
			"definition": submission.Definition,
			"example":    submission.Example,
			"tags":       strings.Join(submission.Tags, ","),
			"giphy":      submission.GiphyURL,
		}).
		Post("/define")
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if res.IsError() {
		return &TransportError{Word: submission.Word, StatusCode: res.StatusCode()}
	}
	return nil
}
