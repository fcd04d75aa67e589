package core

import "errors"

var (
	ErrUnknownTool    = errors.New("unknown tool")
	ErrUnknownAction  = errors.New("unknown tool action")
	ErrInvalidRequest = errors.New("invalid request")
)

// ToolError is a failure raised by a debug-tool handler. Only the message is
// surfaced in the AJAX failure envelope.
type ToolError struct {
	Tool    string
	Message string
}

func (e *ToolError) Error() string {
	return e.Message
}

// NewToolError builds a handler failure for the named tool.
func NewToolError(tool, msg string) *ToolError {
	return &ToolError{Tool: tool, Message: msg}
}
