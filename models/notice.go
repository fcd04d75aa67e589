package models

// Notice is a human-readable message queued after a settings save and shown
// on the next admin page render.
type Notice struct {
	Level   string `json:"level"` // success, warning
	Message string `json:"message"`
}
