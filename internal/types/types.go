package types

// AppState holds shared application state
type AppState struct {
	Width   int
	Height  int
	Pending int // Clipboard writes issued but not yet settled
}

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeLoading // Loading state with spinner
)

// StatusMsg shows a transient message in the user message line
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the user message line
type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// Helper functions for creating status messages

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

