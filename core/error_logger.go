package core

import (
	"beforeafter/models"
	"encoding/json"
	"sync"
	"time"
)

// ErrorLogger records recent errors in memory so the logs debug tool can
// surface them without hitting the database.
type ErrorLogger struct {
	logs      []*models.ErrorLog
	mu        sync.RWMutex
	maxLogs   int
	idCounter int
}

var ErrorLoggerInstance *ErrorLogger

func init() {
	ErrorLoggerInstance = &ErrorLogger{
		logs:    make([]*models.ErrorLog, 0, 100),
		maxLogs: 100,
	}
}

// LogError records an error log entry
func (e *ErrorLogger) LogError(level, source, message, detail string, contextData map[string]interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Serialize context
	contextJSON := ""
	if contextData != nil {
		if data, err := json.Marshal(contextData); err == nil {
			contextJSON = string(data)
		}
	}

	// Drop the oldest entry when full
	if len(e.logs) >= e.maxLogs {
		e.logs = e.logs[1:]
	}

	e.idCounter++
	e.logs = append(e.logs, &models.ErrorLog{
		ID:        e.idCounter,
		Timestamp: time.Now(),
		Level:     level,
		Source:    source,
		Message:   message,
		Detail:    detail,
		Context:   contextJSON,
	})
}

// GetErrorLogs returns recent error logs, latest first.
func (e *ErrorLogger) GetErrorLogs() []*models.ErrorLog {
	e.mu.RLock()
	defer e.mu.RUnlock()

	total := len(e.logs)
	result := make([]*models.ErrorLog, total)
	for i := 0; i < total; i++ {
		result[i] = e.logs[total-1-i]
	}
	return result
}

// ClearErrorLogs removes all error logs
func (e *ErrorLogger) ClearErrorLogs() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logs = make([]*models.ErrorLog, 0, e.maxLogs)
	e.idCounter = 0
}

// LogErrorSimple records a simple error
func LogErrorSimple(source, message string) {
	ErrorLoggerInstance.LogError("ERROR", source, message, "", nil)
}

// LogErrorWithDetail records an error with details
func LogErrorWithDetail(source, message, detail string) {
	ErrorLoggerInstance.LogError("ERROR", source, message, detail, nil)
}

// LogWarn records a warning
func LogWarn(source, message, detail string) {
	ErrorLoggerInstance.LogError("WARN", source, message, detail, nil)
}
