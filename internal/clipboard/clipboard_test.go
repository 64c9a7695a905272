package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestFunc(t *testing.T) {
	var got string
	w := Func(func(text string) error {
		got = text
		return nil
	})

	require.NoError(t, w.Write("hello"))
	assert.Equal(t, "hello", got)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{name: "auto", backend: BackendAuto},
		{name: "empty means auto", backend: ""},
		{name: "system", backend: BackendSystem},
		{name: "osc52", backend: BackendOSC52},
		{name: "unknown", backend: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(tt.backend, &bytes.Buffer{})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "carrier-pigeon")
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, w)
		})
	}
}

func TestNew_TypedBackends(t *testing.T) {
	w, err := New(BackendSystem, nil)
	require.NoError(t, err)
	assert.IsType(t, System{}, w)

	w, err = New(BackendOSC52, &bytes.Buffer{})
	require.NoError(t, err)
	assert.IsType(t, &OSC52{}, w)
}

func TestAuto_NonTerminalWithoutSystemClipboard(t *testing.T) {
	if SystemSupported() {
		t.Skip("system clipboard available on this host")
	}

	w := Auto(&bytes.Buffer{})
	err := w.Write("hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSystem_UnsupportedPlatform(t *testing.T) {
	if SystemSupported() {
		t.Skip("system clipboard available on this host")
	}

	err := NewSystem().Write("hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
	assert.False(t, IsTerminal("not a file"))
}

func TestOSC52_Write(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		wantPrefix string
	}{
		{name: "default", mode: ModeDefault, wantPrefix: "\x1b]52;c;"},
		{name: "tmux", mode: ModeTmux, wantPrefix: "\x1bPtmux;"},
		{name: "screen", mode: ModeScreen, wantPrefix: "\x1bP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			w := NewOSC52(&out, tt.mode)

			require.NoError(t, w.Write("hello"))

			assert.Equal(t, tt.mode, w.Mode())
			assert.True(t, bytes.HasPrefix(out.Bytes(), []byte(tt.wantPrefix)),
				"unexpected sequence %q", out.String())
			assert.Contains(t, out.String(), base64.StdEncoding.EncodeToString([]byte("hello")))
			assert.NotContains(t, out.String(), "hello")
		})
	}
}

func TestOSC52_EmptyText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewOSC52(&out, ModeDefault).Write(""))
	assert.Contains(t, out.String(), "]52;c;")
}

func TestOSC52_WriteError(t *testing.T) {
	err := NewOSC52(failingWriter{}, ModeDefault).Write("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write OSC 52 sequence")
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name string
		tmux string
		term string
		want Mode
	}{
		{name: "plain terminal", term: "xterm-256color", want: ModeDefault},
		{name: "tmux", tmux: "/tmp/tmux-1000/default,123,0", term: "screen-256color", want: ModeTmux},
		{name: "screen", term: "screen.xterm-256color", want: ModeScreen},
		{name: "no env", want: ModeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectMode(tt.tmux, tt.term))
		})
	}
}

func TestDetectMode_Env(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "screen")
	assert.Equal(t, ModeScreen, DetectMode())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "default", ModeDefault.String())
	assert.Equal(t, "tmux", ModeTmux.String())
	assert.Equal(t, "screen", ModeScreen.String())
}
