// Package copier copies text to the clipboard and reports the outcome:
// a notification on success, a diagnostic log entry on failure.
//
// Each call issues exactly one write. Once the write settles exactly one of
// the two continuations runs, once. A write that never settles runs neither;
// no timeout and no retry are applied.
package copier

import (
	"errors"
	"fmt"
	"sync"

	"github.com/renato0307/clipcopy/internal/clipboard"
	"github.com/renato0307/clipcopy/internal/logging"
)

const (
	// SuccessMessage is shown to the user once the clipboard accepted the text.
	SuccessMessage = "Código copiado al portapapeles"
	// FailurePrefix starts the log entry written when the clipboard refused the text.
	FailurePrefix = "Error al copiar el texto: "
)

// ErrClipboardWriteFailed is the single error kind produced by a copy.
// The host supplied detail is wrapped inside it.
var ErrClipboardWriteFailed = errors.New("clipboard write failed")

// Notifier presents a blocking, user dismissible notification.
type Notifier interface {
	Alert(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string)

// Alert calls f(message).
func (f NotifierFunc) Alert(message string) {
	f(message)
}

// Logger is the diagnostic sink used by the failure continuation.
type Logger interface {
	Error(msg string, args ...any)
}

// Copier issues clipboard writes and routes their outcomes.
type Copier struct {
	writer   clipboard.Writer
	notifier Notifier
	logger   Logger
	pending  sync.WaitGroup
}

// New creates a Copier. A nil logger means the global logger, looked up each
// time a failure is reported.
func New(writer clipboard.Writer, notifier Notifier, logger Logger) *Copier {
	return &Copier{
		writer:   writer,
		notifier: notifier,
		logger:   logger,
	}
}

// Copy writes text to the clipboard in the background and returns
// immediately. The outcome is reported through the notifier or the logger.
func (c *Copier) Copy(text string) {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		c.Report(Write(c.writer, text))
	}()
}

// Wait blocks until every write issued by Copy has settled and been reported.
func (c *Copier) Wait() {
	c.pending.Wait()
}

// Report runs the continuation matching the outcome.
func (c *Copier) Report(o Outcome) {
	if o.Succeeded() {
		c.notifier.Alert(SuccessMessage)
		return
	}
	c.log().Error(FailurePrefix+o.Detail().Error(), "error", o.Err())
}

// Write performs one blocking write and captures its outcome.
func Write(w clipboard.Writer, text string) Outcome {
	err := logging.TimeWithResult("clipboard write", func() error {
		return w.Write(text)
	})
	return OutcomeOf(err)
}

// Outcome is the settled result of a single write: success, or failure with
// the host supplied detail.
type Outcome struct {
	detail error
}

// Success returns the successful outcome.
func Success() Outcome {
	return Outcome{}
}

// Failure returns a failed outcome carrying detail. A nil detail is
// replaced by ErrClipboardWriteFailed so the outcome stays a failure.
func Failure(detail error) Outcome {
	if detail == nil {
		detail = ErrClipboardWriteFailed
	}
	return Outcome{detail: detail}
}

// OutcomeOf converts a write error into an Outcome.
func OutcomeOf(err error) Outcome {
	if err != nil {
		return Failure(err)
	}
	return Success()
}

// Succeeded reports whether the write completed.
func (o Outcome) Succeeded() bool {
	return o.detail == nil
}

// Detail returns the host supplied failure detail, nil on success.
func (o Outcome) Detail() error {
	return o.detail
}

// Err returns the failure as ErrClipboardWriteFailed wrapping the detail,
// nil on success.
func (o Outcome) Err() error {
	switch {
	case o.detail == nil:
		return nil
	case errors.Is(o.detail, ErrClipboardWriteFailed):
		return o.detail
	default:
		return fmt.Errorf("%w: %w", ErrClipboardWriteFailed, o.detail)
	}
}

func (c *Copier) log() Logger {
	if c.logger == nil {
		return logging.Get()
	}
	return c.logger
}
