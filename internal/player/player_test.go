package player

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_urbandict "github.com/tkhach/urban/internal/mocks/urbandict"
	"github.com/tkhach/urban/internal/urbandict"
)

// newSampleServer serves fake audio bytes and closes with the test.
func newSampleServer(t *testing.T, status int) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, err := w.Write([]byte("fake audio bytes"))
			require.NoError(t, err)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func sampleTempFiles(t *testing.T) []string {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(os.TempDir(), "urban-sample-*"))
	require.NoError(t, err)
	return files
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		options       Options
		wantAvailable bool
	}{
		{
			name:          "explicit command resolvable in PATH",
			options:       Options{Command: "true"},
			wantAvailable: true,
		},
		{
			name:          "explicit command missing from PATH",
			options:       Options{Command: "definitely-not-an-audio-player"},
			wantAvailable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			definer := mock_urbandict.NewMockDefiner(ctrl)

			p := New(definer, tt.options)
			assert.Equal(t, tt.wantAvailable, p.Available())
		})
	}
}

func TestPlayer_PlayDefinition(t *testing.T) {
	tests := []struct {
		name         string
		command      string
		sampleStatus int
		sampleIndex  int
		audioSamples func(serverURL string) []string
		block        bool

		wantErr error
	}{
		{
			name:         "blocking playback succeeds",
			command:      "true",
			sampleStatus: http.StatusOK,
			sampleIndex:  0,
			audioSamples: func(serverURL string) []string { return []string{serverURL + "/foo.mp3"} },
			block:        true,
		},
		{
			name:         "second sample addressed by index",
			command:      "true",
			sampleStatus: http.StatusOK,
			sampleIndex:  1,
			audioSamples: func(serverURL string) []string {
				return []string{serverURL + "/first.mp3", serverURL + "/second.mp3"}
			},
			block: true,
		},
		{
			name:         "index out of bounds",
			command:      "true",
			sampleStatus: http.StatusOK,
			sampleIndex:  1,
			audioSamples: func(serverURL string) []string { return []string{serverURL + "/foo.mp3"} },
			block:        true,

			wantErr: &urbandict.OutOfScopeError{Word: "foo (sample)", Index: 1},
		},
		{
			name:         "no samples at all",
			command:      "true",
			sampleStatus: http.StatusOK,
			sampleIndex:  0,
			audioSamples: func(serverURL string) []string { return nil },
			block:        true,

			wantErr: &urbandict.OutOfScopeError{Word: "foo (sample)", Index: 0},
		},
		{
			name:         "download failure collapses to no sound available",
			command:      "true",
			sampleStatus: http.StatusNotFound,
			sampleIndex:  0,
			audioSamples: func(serverURL string) []string { return []string{serverURL + "/foo.mp3"} },
			block:        true,

			wantErr: &urbandict.NoSoundAvailableError{Word: "foo"},
		},
		{
			name:         "player failure collapses to no sound available",
			command:      "false",
			sampleStatus: http.StatusOK,
			sampleIndex:  0,
			audioSamples: func(serverURL string) []string { return []string{serverURL + "/foo.mp3"} },
			block:        true,

			wantErr: &urbandict.NoSoundAvailableError{Word: "foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newSampleServer(t, tt.sampleStatus)

			ctrl := gomock.NewController(t)
			// No Define expectations: playing an already fetched record must
			// not trigger a lookup.
			definer := mock_urbandict.NewMockDefiner(ctrl)

			p := New(definer, Options{Command: tt.command})
			defer func() {
				_ = p.Close()
			}()

			definition := urbandict.Definition{
				Word:         "foo",
				AudioSamples: tt.audioSamples(server.URL),
			}

			before := sampleTempFiles(t)
			err := p.PlayDefinition(context.Background(), definition, tt.sampleIndex, tt.block)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
			} else {
				require.NoError(t, err)
			}

			// The transient file is gone on every outcome.
			assert.Equal(t, before, sampleTempFiles(t))
		})
	}
}

func TestPlayer_PlayDefinition_NonBlocking(t *testing.T) {
	server := newSampleServer(t, http.StatusOK)

	ctrl := gomock.NewController(t)
	definer := mock_urbandict.NewMockDefiner(ctrl)

	p := New(definer, Options{Command: "true"})
	defer func() {
		_ = p.Close()
	}()

	definition := urbandict.Definition{
		Word:         "foo",
		AudioSamples: []string{server.URL + "/foo.mp3"},
	}

	before := sampleTempFiles(t)
	require.NoError(t, p.PlayDefinition(context.Background(), definition, 0, false))

	// Cleanup happens after the player process exits.
	assert.Eventually(t, func() bool {
		return len(sampleTempFiles(t)) == len(before)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestPlayer_PlayDefinition_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	definer := mock_urbandict.NewMockDefiner(ctrl)

	p := New(definer, Options{Command: "definitely-not-an-audio-player"})
	defer func() {
		_ = p.Close()
	}()

	err := p.PlayDefinition(context.Background(), urbandict.Definition{Word: "foo"}, 0, true)
	require.Error(t, err)

	var unavailable *urbandict.CapabilityUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestPlayer_PlayWord(t *testing.T) {
	server := newSampleServer(t, http.StatusOK)

	tests := []struct {
		name      string
		setupMock func(definer *mock_urbandict.MockDefiner)

		wantErr error
	}{
		{
			name: "resolves the word through the first definition",
			setupMock: func(definer *mock_urbandict.MockDefiner) {
				definer.EXPECT().
					Define(gomock.Any(), "foo", 0).
					Return(urbandict.Definition{
						Word:         "foo",
						AudioSamples: []string{server.URL + "/foo.mp3"},
					}, nil)
			},
		},
		{
			name: "lookup errors surface unchanged",
			setupMock: func(definer *mock_urbandict.MockDefiner) {
				definer.EXPECT().
					Define(gomock.Any(), "foo", 0).
					Return(urbandict.Definition{}, &urbandict.NotFoundError{Word: "foo"})
			},

			wantErr: &urbandict.NotFoundError{Word: "foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			definer := mock_urbandict.NewMockDefiner(ctrl)
			tt.setupMock(definer)

			p := New(definer, Options{Command: "true"})
			defer func() {
				_ = p.Close()
			}()

			err := p.PlayWord(context.Background(), "foo", 0, true)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCandidates(t *testing.T) {
	assert.NotEmpty(t, candidates())
	for _, name := range candidates() {
		_, known := playerArgs[name]
		assert.True(t, known, "candidate %s has no playback arguments", name)
	}
}
