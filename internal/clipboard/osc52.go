package clipboard

import (
	"fmt"
	"io"
	"os"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Mode selects how the OSC 52 sequence is wrapped for terminal multiplexers.
type Mode int

const (
	ModeDefault Mode = iota
	ModeTmux
	ModeScreen
)

func (m Mode) String() string {
	switch m {
	case ModeTmux:
		return "tmux"
	case ModeScreen:
		return "screen"
	default:
		return "default"
	}
}

// OSC52 asks the terminal emulator to set the clipboard by writing an
// OSC 52 escape sequence. Works over SSH where no local clipboard tool exists.
// The terminal gives no acknowledgement, so a successful Write only means the
// sequence reached the output.
type OSC52 struct {
	out  io.Writer
	mode Mode
}

// NewOSC52 creates an OSC 52 writer. A nil out writes to stdout.
func NewOSC52(out io.Writer, mode Mode) *OSC52 {
	if out == nil {
		out = stdout
	}
	return &OSC52{out: out, mode: mode}
}

// Mode returns the multiplexer wrapping in use
func (o *OSC52) Mode() Mode {
	return o.mode
}

// Write emits the OSC 52 sequence carrying text
func (o *OSC52) Write(text string) error {
	seq := osc52.New(text)
	switch o.mode {
	case ModeTmux:
		seq = seq.Tmux()
	case ModeScreen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.out); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}

// DetectMode inspects the environment for tmux or GNU screen.
func DetectMode() Mode {
	return detectMode(os.Getenv("TMUX"), os.Getenv("TERM"))
}

func detectMode(tmux, term string) Mode {
	switch {
	case tmux != "":
		return ModeTmux
	case strings.HasPrefix(term, "screen"):
		return ModeScreen
	default:
		return ModeDefault
	}
}
