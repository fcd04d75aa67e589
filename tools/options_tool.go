package tools

import (
	"beforeafter/service"

	"github.com/gin-gonic/gin"
)

// optionsTool exports the effective configuration and can reset it.
type optionsTool struct {
	settings *service.SettingsService
}

func (t *optionsTool) Run(action string, payload map[string]string) (any, error) {
	switch action {
	case "export":
		return t.settings.Export()

	case "reset":
		if err := t.settings.Reset(); err != nil {
			return nil, err
		}
		return gin.H{"reset": true}, nil

	default:
		return nil, unknownAction("options", action)
	}
}
