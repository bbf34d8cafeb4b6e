// Package player plays a definition's sound samples through a system audio
// player. The capability is optional: when no player binary exists in the
// environment, playback calls fail with a dedicated error instead of
// crashing.
package player

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"resty.dev/v3"

	"github.com/tkhach/urban/internal/urbandict"
)

//go:generate mockgen -source=player.go -destination=../mocks/urbandict/mock_definer.go -package=mock_urbandict

// Definer resolves a word into a single definition record.
type Definer interface {
	Define(ctx context.Context, word string, index int) (urbandict.Definition, error)
}

// playerArgs maps each supported player binary to the flags that make it
// play one file quietly and exit.
var playerArgs = map[string][]string{
	"afplay": nil,
	"mpg123": {"-q"},
	"ffplay": {"-nodisp", "-autoexit", "-loglevel", "quiet"},
	"play":   {"-q"},
	"paplay": nil,
	"aplay":  {"-q"},
}

func candidates() []string {
	if runtime.GOOS == "darwin" {
		return []string{"afplay", "mpg123", "ffplay", "play"}
	}
	return []string{"mpg123", "ffplay", "play", "paplay", "aplay"}
}

func detectPlayer() string {
	for _, name := range candidates() {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return ""
}

// warnOnce keeps the unavailability notice to a single line per process.
var warnOnce sync.Once

// Options configures a Player.
type Options struct {
	// Command names the player binary to use, bypassing detection.
	Command string
	// WarnIfUnavailable controls whether a one-time advisory notice is
	// logged when no audio player is found.
	WarnIfUnavailable bool
}

type Player struct {
	definer    Definer
	httpClient *resty.Client
	command    string
}

// New creates a Player. The audio player binary is resolved once here; a
// Player created without a usable binary stays constructed but reports the
// capability as unavailable.
func New(definer Definer, opts Options) *Player {
	command := opts.Command
	if command != "" {
		if _, err := exec.LookPath(command); err != nil {
			command = ""
		}
	} else {
		command = detectPlayer()
	}

	if command == "" && opts.WarnIfUnavailable {
		warnOnce.Do(func() {
			slog.Default().Warn("no supported audio player found; sample playback is disabled",
				"candidates", candidates(),
			)
		})
	}

	return &Player{
		definer:    definer,
		httpClient: resty.New(),
		command:    command,
	}
}

func (p *Player) Close() error {
	return p.httpClient.Close()
}

// Available reports whether sample playback can work in this environment.
func (p *Player) Available() bool {
	return p.command != ""
}

// PlayWord looks the word up, takes its first definition and plays the sound
// sample at sampleIndex. Lookup failures surface as the fetcher's own errors.
func (p *Player) PlayWord(ctx context.Context, word string, sampleIndex int, block bool) error {
	definition, err := p.definer.Define(ctx, word, 0)
	if err != nil {
		return err
	}
	return p.PlayDefinition(ctx, definition, sampleIndex, block)
}

// PlayDefinition plays the sound sample at sampleIndex of an already fetched
// record. No lookup is performed. With block set, the call returns after
// playback finishes; otherwise playback continues in the background and is
// not tracked further.
func (p *Player) PlayDefinition(ctx context.Context, definition urbandict.Definition, sampleIndex int, block bool) error {
	if !p.Available() {
		return &urbandict.CapabilityUnavailableError{}
	}
	if sampleIndex < 0 || sampleIndex >= len(definition.AudioSamples) {
		return &urbandict.OutOfScopeError{Word: definition.Word + " (sample)", Index: sampleIndex}
	}

	sampleURL := definition.AudioSamples[sampleIndex]
	path, err := p.download(ctx, sampleURL)
	if err != nil {
		slog.Default().Debug("sample download failed",
			"word", definition.Word,
			"url", sampleURL,
			"error", err,
		)
		return &urbandict.NoSoundAvailableError{Word: definition.Word}
	}

	if err := p.play(path, block); err != nil {
		slog.Default().Debug("sample playback failed",
			"word", definition.Word,
			"command", p.command,
			"error", err,
		)
		return &urbandict.NoSoundAvailableError{Word: definition.Word}
	}
	return nil
}

// download fetches the sample into a temporary file and returns its path.
// The file is removed by play, or here when the write fails.
func (p *Player) download(ctx context.Context, sampleURL string) (string, error) {
	res, err := p.httpClient.R().
		SetContext(ctx).
		Get(sampleURL)
	if err != nil {
		return "", fmt.Errorf("httpClient.Get > %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("sample download failed with HTTP status %d", res.StatusCode())
	}

	file, err := os.CreateTemp("", "urban-sample-*")
	if err != nil {
		return "", fmt.Errorf("os.CreateTemp > %w", err)
	}
	if _, err := file.Write(res.Bytes()); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("file.Close > %w", err)
	}
	return file.Name(), nil
}

// play invokes the player on path and removes the file once playback is
// over, on every path including failures.
func (p *Player) play(path string, block bool) error {
	args := append(append([]string{}, playerArgs[p.command]...), path)
	cmd := exec.Command(p.command, args...)

	if block {
		defer func() {
			_ = os.Remove(path)
		}()
		return cmd.Run()
	}

	if err := cmd.Start(); err != nil {
		_ = os.Remove(path)
		return err
	}
	go func() {
		_ = cmd.Wait()
		_ = os.Remove(path)
	}()
	return nil
}
