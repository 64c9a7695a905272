package copier

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ResultMsg carries a settled write back into the Bubble Tea update loop.
// The model hands it to Copier.Report.
type ResultMsg struct {
	Outcome Outcome
}

// Cmd returns a tea.Cmd that performs the write off the update loop.
// Unlike Copy it does not report; the receiving model calls Report when the
// ResultMsg arrives so both continuations run on the update loop.
func (c *Copier) Cmd(text string) tea.Cmd {
	w := c.writer
	return func() tea.Msg {
		return ResultMsg{Outcome: Write(w, text)}
	}
}
