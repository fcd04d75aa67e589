package tools

import (
	"beforeafter/core"

	"github.com/gin-gonic/gin"
)

// cacheTool inspects and clears the render cache.
type cacheTool struct {
	cache *core.RenderCache
}

func (t *cacheTool) Run(action string, payload map[string]string) (any, error) {
	switch action {
	case "status":
		return t.cache.Stats(), nil

	case "clear":
		if slug := payload["slug"]; slug != "" {
			t.cache.Invalidate(slug)
			return gin.H{"cleared": 1, "slug": slug}, nil
		}
		return gin.H{"cleared": t.cache.Clear()}, nil

	default:
		return nil, unknownAction("cache", action)
	}
}
