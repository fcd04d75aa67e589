package tools

import (
	"strconv"

	"beforeafter/core"
	"beforeafter/service"

	"github.com/gin-gonic/gin"
)

// demoTool seeds sample galleries so a fresh install has something to show.
type demoTool struct {
	settings *service.SettingsService
	gallery  *service.GalleryService
	rules    *core.RewriteRules
}

func (t *demoTool) Run(action string, payload map[string]string) (any, error) {
	switch action {
	case "seed":
		count := 3
		if raw := payload["count"]; raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				count = n
			}
		}

		created, err := t.gallery.SeedDemo(count)
		if err != nil {
			return nil, err
		}

		// New published slugs mean new public routes.
		if slugs, err := t.gallery.PublishedSlugs(); err == nil {
			t.rules.Rebuild(t.settings.Defaults().GalleryBase, slugs)
		}

		slugs := make([]string, len(created))
		for i, g := range created {
			slugs[i] = g.Slug
		}
		return gin.H{"created": len(created), "slugs": slugs}, nil

	default:
		return nil, unknownAction("demo", action)
	}
}
