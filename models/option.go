package models

import "time"

// Option stores a flat configuration value in SQLite, addressed by string key.
// It is intentionally generic so new settings never need schema changes.
// Boolean flags are stored as the literal strings "yes"/"no" — a convention
// carried over from the original plugin's option store.
type Option struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Option keys recognized by the settings pages.
const (
	OptColumns         = "columns"
	OptItemsPerPage    = "items_per_page"
	OptImageQuality    = "image_quality"
	OptShowTitle       = "show_title"
	OptLazyLoad        = "lazy_load"
	OptCustomCSS       = "custom_css"
	OptDefaultMode     = "default_mode"
	OptSEOAltFromTitle = "seo_alt_from_title"
	OptSEONoindex      = "seo_noindex"
	OptGalleryBase     = "gallery_base"
)

// OptionDefaults maps each known key to its value when nothing is stored.
var OptionDefaults = map[string]string{
	OptColumns:         "2",
	OptItemsPerPage:    "10",
	OptImageQuality:    "82",
	OptShowTitle:       "yes",
	OptLazyLoad:        "no",
	OptCustomCSS:       "",
	OptDefaultMode:     "slider",
	OptSEOAltFromTitle: "yes",
	OptSEONoindex:      "no",
	OptGalleryBase:     "gallery",
}

// Allowed enum values for restricted options.
var (
	ColumnsChoices     = []string{"2", "3"}
	DefaultModeChoices = []string{"slider", "fade", "side_by_side"}
)
