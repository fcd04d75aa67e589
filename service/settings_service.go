package service

import (
	"beforeafter/core"
	"beforeafter/database"
	"beforeafter/models"
	"fmt"
)

// SettingsService reads and writes the configuration options behind the
// settings pages. Reads resolve stored-value-or-default; writes sanitize
// every recognized field before it reaches the option store.
type SettingsService struct{}

// NewSettingsService constructs a settings service
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// String returns the stored value for key, or its registered default.
func (s *SettingsService) String(key string) string {
	value, ok, err := database.GetOption(key)
	if err != nil || !ok {
		return models.OptionDefaults[key]
	}
	return value
}

// Int returns the stored value for key clamped into [min, max]. Missing or
// unparseable values resolve to the registered default.
func (s *SettingsService) Int(key string, min, max int) int {
	return core.ClampInt(s.String(key), min, max, core.ClampInt(models.OptionDefaults[key], min, max, min))
}

// YesNo returns "yes" or "no" for a boolean-flag key. Unknown stored values
// normalize to the registered default.
func (s *SettingsService) YesNo(key string) string {
	def := models.OptionDefaults[key]
	value, ok, err := database.GetOption(key)
	if err != nil || !ok {
		return def
	}
	switch value {
	case "yes", "no":
		return value
	default:
		return def
	}
}

// General resolves the display options for the general settings page.
func (s *SettingsService) General() models.GeneralSettings {
	return models.GeneralSettings{
		Columns:      core.OneOf(s.String(models.OptColumns), models.ColumnsChoices, models.OptionDefaults[models.OptColumns]),
		ItemsPerPage: s.Int(models.OptItemsPerPage, 1, 100),
		ImageQuality: s.Int(models.OptImageQuality, 1, 100),
		ShowTitle:    s.YesNo(models.OptShowTitle),
		LazyLoad:     s.YesNo(models.OptLazyLoad),
		CustomCSS:    s.String(models.OptCustomCSS),
	}
}

// Defaults resolves the default-mode/SEO options.
func (s *SettingsService) Defaults() models.DefaultSettings {
	return models.DefaultSettings{
		DefaultMode:     core.OneOf(s.String(models.OptDefaultMode), models.DefaultModeChoices, models.OptionDefaults[models.OptDefaultMode]),
		SEOAltFromTitle: s.YesNo(models.OptSEOAltFromTitle),
		SEONoindex:      s.YesNo(models.OptSEONoindex),
		GalleryBase:     core.SanitizeSlug(s.String(models.OptGalleryBase), models.OptionDefaults[models.OptGalleryBase]),
	}
}

// SaveGeneral sanitizes and persists the general settings form. Checkbox
// fields absent from the POST are stored as "no".
func (s *SettingsService) SaveGeneral(form models.GeneralSettingsForm) error {
	writes := map[string]string{
		models.OptColumns:      core.OneOf(form.Columns, models.ColumnsChoices, models.OptionDefaults[models.OptColumns]),
		models.OptItemsPerPage: fmt.Sprintf("%d", core.ClampInt(form.ItemsPerPage, 1, 100, 10)),
		models.OptImageQuality: fmt.Sprintf("%d", core.ClampInt(form.ImageQuality, 1, 100, 82)),
		models.OptShowTitle:    core.YesNo(form.ShowTitle, "no"),
		models.OptLazyLoad:     core.YesNo(form.LazyLoad, "no"),
		models.OptCustomCSS:    core.SanitizeCSS(form.CustomCSS),
	}
	return s.writeAll(writes)
}

// SaveDefaults sanitizes and persists the defaults/SEO form.
func (s *SettingsService) SaveDefaults(form models.DefaultSettingsForm) error {
	writes := map[string]string{
		models.OptDefaultMode:     core.OneOf(form.DefaultMode, models.DefaultModeChoices, models.OptionDefaults[models.OptDefaultMode]),
		models.OptSEOAltFromTitle: core.YesNo(form.SEOAltFromTitle, "no"),
		models.OptSEONoindex:      core.YesNo(form.SEONoindex, "no"),
		models.OptGalleryBase:     core.SanitizeSlug(form.GalleryBase, models.OptionDefaults[models.OptGalleryBase]),
	}
	return s.writeAll(writes)
}

// Export returns every known option resolved to its effective value plus any
// extra stored keys, for the options debug tool.
func (s *SettingsService) Export() (map[string]string, error) {
	stored, err := database.AllOptions()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(models.OptionDefaults))
	for key, def := range models.OptionDefaults {
		if v, ok := stored[key]; ok {
			out[key] = v
		} else {
			out[key] = def
		}
	}
	// Keep unknown stored keys visible; they were ignored, not deleted.
	for key, v := range stored {
		if _, known := models.OptionDefaults[key]; !known {
			out[key] = v
		}
	}
	return out, nil
}

// Reset drops every stored option so defaults apply again.
func (s *SettingsService) Reset() error {
	if err := database.ResetOptions(); err != nil {
		return fmt.Errorf("failed to reset options: %w", err)
	}
	return nil
}

func (s *SettingsService) writeAll(writes map[string]string) error {
	for key, value := range writes {
		if err := database.SetOption(key, value); err != nil {
			return fmt.Errorf("failed to save option %s: %w", key, err)
		}
	}
	return nil
}
