package tools

import (
	"beforeafter/core"

	"github.com/gin-gonic/gin"
)

// logsTool lists and clears the in-memory error log.
type logsTool struct {
	errors *core.ErrorLogger
}

func (t *logsTool) Run(action string, payload map[string]string) (any, error) {
	switch action {
	case "list":
		return t.errors.GetErrorLogs(), nil

	case "clear":
		t.errors.ClearErrorLogs()
		return gin.H{"cleared": true}, nil

	default:
		return nil, unknownAction("logs", action)
	}
}
