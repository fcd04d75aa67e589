package models

// GeneralSettingsForm is the POST body of the general settings page. All
// fields arrive as strings and are sanitized before persisting; fields not
// listed here are ignored.
type GeneralSettingsForm struct {
	Columns      string `form:"columns"`
	ItemsPerPage string `form:"items_per_page"`
	ImageQuality string `form:"image_quality"`
	ShowTitle    string `form:"show_title"`
	LazyLoad     string `form:"lazy_load"`
	CustomCSS    string `form:"custom_css"`
}

// DefaultSettingsForm is the POST body of the defaults/SEO settings page.
type DefaultSettingsForm struct {
	DefaultMode     string `form:"default_mode"`
	SEOAltFromTitle string `form:"seo_alt_from_title"`
	SEONoindex      string `form:"seo_noindex"`
	GalleryBase     string `form:"gallery_base"`
}

// GeneralSettings is the resolved view of the display options: stored value
// or default per key, with numeric fields parsed and clamped.
type GeneralSettings struct {
	Columns      string `json:"columns"`
	ItemsPerPage int    `json:"items_per_page"`
	ImageQuality int    `json:"image_quality"`
	ShowTitle    string `json:"show_title"`
	LazyLoad     string `json:"lazy_load"`
	CustomCSS    string `json:"custom_css"`
}

// DefaultSettings is the resolved view of the default-mode/SEO options.
type DefaultSettings struct {
	DefaultMode     string `json:"default_mode"`
	SEOAltFromTitle string `json:"seo_alt_from_title"`
	SEONoindex      string `json:"seo_noindex"`
	GalleryBase     string `json:"gallery_base"`
}
