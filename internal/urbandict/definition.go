package urbandict

import (
	"encoding/json"
	"fmt"
	"time"
)

// WrittenOnLayout is the only timestamp format the service uses. Responses
// with a different format are rejected rather than guessed at.
const WrittenOnLayout = "2006-01-02T15:04:05.000000Z"

// Definition is a single dictionary entry as returned by the service.
// It is read-only once constructed.
type Definition struct {
	// Word is the matched headword. Its casing and content may differ from
	// the query term.
	Word       string
	Definition string
	Example    string
	Author     string
	Permalink  string
	Upvotes    int
	Downvotes  int
	// AudioSamples keeps the service's ordering. Sample playback addresses
	// entries by position in this slice.
	AudioSamples []string
	WrittenOn    time.Time
	// RawData is the decoded JSON object for this entry, preserved verbatim
	// so callers can reach fields this struct does not model.
	RawData map[string]any
	// Index is the entry's position in the result list at fetch time. A
	// single definition picked out of a longer list keeps its original
	// position.
	Index int
}

type defineResponse struct {
	List []json.RawMessage `json:"list"`
}

type definitionEntry struct {
	Word       string   `json:"word"`
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Author     string   `json:"author"`
	Permalink  string   `json:"permalink"`
	Upvotes    int      `json:"thumbs_up"`
	Downvotes  int      `json:"thumbs_down"`
	SoundURLs  []string `json:"sound_urls"`
	WrittenOn  string   `json:"written_on"`
}

func newDefinition(raw json.RawMessage, index int) (Definition, error) {
	var entry definitionEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Definition{}, fmt.Errorf("json.Unmarshal > %w", err)
	}

	var rawData map[string]any
	if err := json.Unmarshal(raw, &rawData); err != nil {
		return Definition{}, fmt.Errorf("json.Unmarshal > %w", err)
	}

	writtenOn, err := time.Parse(WrittenOnLayout, entry.WrittenOn)
	if err != nil {
		return Definition{}, fmt.Errorf("time.Parse(%q) > %w", entry.WrittenOn, err)
	}

	return Definition{
		Word:         entry.Word,
		Definition:   entry.Definition,
		Example:      entry.Example,
		Author:       entry.Author,
		Permalink:    entry.Permalink,
		Upvotes:      entry.Upvotes,
		Downvotes:    entry.Downvotes,
		AudioSamples: entry.SoundURLs,
		WrittenOn:    writtenOn,
		RawData:      rawData,
		Index:        index,
	}, nil
}

// ToMap returns a map representation of the definition with every documented
// field.
func (d Definition) ToMap() map[string]any {
	return map[string]any{
		"word":          d.Word,
		"definition":    d.Definition,
		"example":       d.Example,
		"author":        d.Author,
		"permalink":     d.Permalink,
		"upvotes":       d.Upvotes,
		"downvotes":     d.Downvotes,
		"audio_samples": d.AudioSamples,
		"written_on":    d.WrittenOn,
		"raw_data":      d.RawData,
		"index":         d.Index,
	}
}
