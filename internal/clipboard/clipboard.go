// Package clipboard provides the host clipboard facilities the copier writes
// through: the operating system clipboard, the terminal clipboard (OSC 52),
// and automatic selection between the two.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrUnavailable is returned when no clipboard facility can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer is a clipboard facility that accepts a text payload.
// Write blocks until the facility has accepted or refused the payload.
type Writer interface {
	Write(text string) error
}

// Func adapts a plain function to the Writer interface.
type Func func(text string) error

// Write calls f(text).
func (f Func) Write(text string) error {
	return f(text)
}

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
)

// Backends returns the accepted backend names.
func Backends() []string {
	return []string{BackendAuto, BackendSystem, BackendOSC52}
}

// New resolves a backend name into a Writer. out is where terminal based
// backends emit their escape sequences.
func New(name string, out io.Writer) (Writer, error) {
	switch name {
	case BackendAuto, "":
		return Auto(out), nil
	case BackendSystem:
		return NewSystem(), nil
	case BackendOSC52:
		return NewOSC52(out, DetectMode()), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q (valid: %v)", name, Backends())
	}
}

// Auto picks the system clipboard when the platform supports it, falls back
// to OSC 52 when out is a terminal, and otherwise returns a Writer that
// always fails with ErrUnavailable.
func Auto(out io.Writer) Writer {
	if SystemSupported() {
		return NewSystem()
	}
	if IsTerminal(out) {
		return NewOSC52(out, DetectMode())
	}
	return unavailable{}
}

// IsTerminal reports whether v is backed by a terminal file descriptor.
func IsTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type unavailable struct{}

func (unavailable) Write(string) error {
	return ErrUnavailable
}

// stdout is swapped in tests.
var stdout io.Writer = os.Stdout
