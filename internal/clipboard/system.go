package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// System writes to the operating system clipboard (pbcopy, clip.exe,
// wl-copy, xclip or xsel depending on the platform).
type System struct{}

// NewSystem creates a System clipboard writer
func NewSystem() System {
	return System{}
}

// Write copies text to the system clipboard
func (System) Write(text string) error {
	if !SystemSupported() {
		return ErrUnavailable
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to system clipboard: %w", err)
	}
	return nil
}

// SystemSupported reports whether a system clipboard tool was found at startup.
func SystemSupported() bool {
	return !atotto.Unsupported
}
