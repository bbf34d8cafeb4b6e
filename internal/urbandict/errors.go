package urbandict

import "fmt"

// NotFoundError is returned when the service has no definitions for a word.
type NotFoundError struct {
	Word string
}

func (e *NotFoundError) Error() string {
	return "definition not found for word: " + e.Word
}

// OutOfScopeError is returned when a requested index exceeds the available
// list of definitions, or of audio samples when the word is annotated with
// "(sample)".
type OutOfScopeError struct {
	Word  string
	Index int
}

func (e *OutOfScopeError) Error() string {
	return fmt.Sprintf("definition index %d out of scope for word: %s", e.Index, e.Word)
}

// TransportError is returned when either endpoint answers with a non-success
// HTTP status.
type TransportError struct {
	Word       string
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request for word %q failed with HTTP status %d", e.Word, e.StatusCode)
}

// NoSoundAvailableError is returned when a sound sample could not be
// downloaded or played. The service gives no way to tell a missing sample
// from a failed fetch, so the causes are collapsed on purpose.
type NoSoundAvailableError struct {
	Word string
}

func (e *NoSoundAvailableError) Error() string {
	return "no sound sample available for word: " + e.Word
}

// CapabilityUnavailableError is returned when sample playback is requested
// but no audio player is available in the running environment.
type CapabilityUnavailableError struct{}

func (e *CapabilityUnavailableError) Error() string {
	return "audio playback is unavailable: no supported audio player found"
}
