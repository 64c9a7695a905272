// Package notify implements blocking notifications for non-interactive hosts.
package notify

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/renato0307/clipcopy/internal/clipboard"
	"github.com/renato0307/clipcopy/internal/ui"
)

// DismissHint is printed under the alert when the user must acknowledge it
const DismissHint = "Press Enter to continue"

// Console prints the notification as a boxed alert and, when its input is a
// terminal, blocks until the user presses Enter.
type Console struct {
	mu          sync.Mutex
	theme       *ui.Theme
	out         io.Writer
	in          *bufio.Reader
	waitDismiss bool
}

// NewConsole creates a console notifier. Dismissal is required only when in
// is a terminal.
func NewConsole(theme *ui.Theme, out io.Writer, in io.Reader) *Console {
	c := &Console{
		theme:       theme,
		out:         out,
		waitDismiss: in != nil && clipboard.IsTerminal(in),
	}
	if in != nil {
		c.in = bufio.NewReader(in)
	}
	return c
}

// SetWaitForDismiss overrides terminal detection.
func (c *Console) SetWaitForDismiss(wait bool) {
	c.waitDismiss = wait && c.in != nil
}

// Alert shows message and waits for dismissal. Concurrent alerts are shown
// one after another.
func (c *Console) Alert(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	hint := ""
	if c.waitDismiss {
		hint = DismissHint
	}
	fmt.Fprintln(c.out, ui.RenderAlert(c.theme, message, hint))

	if c.waitDismiss {
		// EOF also dismisses
		_, _ = c.in.ReadString('\n')
	}
}
