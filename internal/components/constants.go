package components

import "time"

// UI component constants
const (
	// LayoutReservedLines is the number of lines around the editor: header,
	// blank line, user message and key help.
	LayoutReservedLines = 4

	// MinBodyHeight keeps the editor usable on tiny terminals.
	MinBodyHeight = 3

	// StatusDisplayDuration is how long info, success and error messages stay
	// in the user message line before clearing.
	StatusDisplayDuration = 3 * time.Second
)
