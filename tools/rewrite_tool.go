package tools

import (
	"beforeafter/core"
	"beforeafter/service"

	"github.com/gin-gonic/gin"
)

// rewriteTool inspects and rebuilds the public gallery route table.
type rewriteTool struct {
	settings *service.SettingsService
	gallery  *service.GalleryService
	rules    *core.RewriteRules
}

func (t *rewriteTool) Run(action string, payload map[string]string) (any, error) {
	switch action {
	case "list":
		return gin.H{
			"base":       t.rules.Base(),
			"flushed_at": t.rules.FlushedAt(),
			"rules":      t.rules.List(),
		}, nil

	case "flush":
		slugs, err := t.gallery.PublishedSlugs()
		if err != nil {
			return nil, err
		}
		base := t.settings.Defaults().GalleryBase
		t.rules.Rebuild(base, slugs)
		return gin.H{
			"base":  base,
			"rules": t.rules.Len(),
		}, nil

	default:
		return nil, unknownAction("rewrite", action)
	}
}
