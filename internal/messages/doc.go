// Package messages defines message handling patterns and conventions for
// clipcopy. It covers how errors, status messages and the copy outcome travel
// between layers.
//
// # Message Handling Patterns by Layer
//
// ## Clipboard Layer (internal/clipboard)
//
// Return standard Go errors. Backends know nothing about the UI or the copy
// outcome continuations.
//
// Pattern:
//
//	if err := atotto.WriteAll(text); err != nil {
//	    return fmt.Errorf("failed to write to system clipboard: %w", err)
//	}
//
// Use clipboard.ErrUnavailable when no facility can be reached so callers can
// test for it with errors.Is.
//
// ## Copier Layer (internal/copier)
//
// Never return errors. A write settles into a copier.Outcome and Report runs
// exactly one continuation:
//
//   - success: Notifier.Alert(copier.SuccessMessage)
//   - failure: Logger.Error(copier.FailurePrefix + detail)
//
// Failures are absorbed here. They are not retried, not surfaced to the
// caller and not shown to the user. The payload text is never included in
// either message.
//
// ## UI Layer (internal/app, internal/components)
//
// Transient feedback that is not a copy outcome (editor cleared) uses
// types.StatusMsg, built with InfoCmd, and shown by the UserMessage component.
// Copy outcomes never go through the status line. A write in flight sets a loading message
// directly so it cannot arrive after the write settles.
//
//	case types.StatusMsg:
//	    m.userMessage.SetMessage(msg.Message, msg.Type)
//	    return m, tea.Tick(components.StatusDisplayDuration, func(time.Time) tea.Msg {
//	        return types.ClearStatusMsg{MessageID: id}
//	    })
//
// Copy outcomes arrive as copier.ResultMsg and are handed to Copier.Report on
// the update loop. The Modal component is the notifier in this layer.
//
// ## Configuration Layer (internal/config, cmd/clipcopy)
//
// Wrap errors with WrapError and return them to main, which prints them to
// stderr and exits non-zero. Configuration errors are the only errors that
// stop the program.
//
// # Error Message Guidelines
//
// 1. Be specific: "unknown clipboard backend \"foo\"" not "bad config"
// 2. Include context: what failed and on which input
// 3. Keep payload text out of messages and logs
package messages
