package handlers

import (
	"net/http"

	"beforeafter/models"
	"beforeafter/service"
	"beforeafter/state"
	"beforeafter/version"

	"github.com/gin-gonic/gin"
)

// pageData is the payload shared by every settings page render: the chrome
// fields plus the page's resolved settings and save nonce.
type pageData struct {
	Title    string
	Active   string
	Version  string
	Notices  []models.Notice
	Nonce    string
	Settings any
	Tools    []string
}

func renderPage(c *gin.Context, template string, data pageData) {
	data.Version = version.GetVersion()
	data.Notices = state.Global.DrainNotices()
	c.HTML(http.StatusOK, template, data)
}

// ShowGeneralPage renders the general display settings form.
func ShowGeneralPage(c *gin.Context) {
	if !canManageOptions(c) {
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	renderPage(c, "general", pageData{
		Title:    "General Settings",
		Active:   "general",
		Nonce:    nonces.Create(ActionSaveGeneral, sessionToken(c)),
		Settings: service.GlobalServices.Settings.General(),
	})
}

// SaveGeneralPage handles the general settings form POST. A missing or stale
// nonce, or a request without the capability, skips the save: the page simply
// re-renders without a success notice.
func SaveGeneralPage(c *gin.Context) {
	if !canManageOptions(c) || !nonces.Verify(c.PostForm("nonce"), ActionSaveGeneral, sessionToken(c)) {
		c.Redirect(http.StatusSeeOther, "/admin/settings/general")
		return
	}

	var form models.GeneralSettingsForm
	if err := c.ShouldBind(&form); err != nil {
		state.Global.PushNotice("warning", "Could not read the submitted form.")
		c.Redirect(http.StatusSeeOther, "/admin/settings/general")
		return
	}

	if err := service.GlobalServices.Settings.SaveGeneral(form); err != nil {
		state.Global.PushNotice("warning", "Settings could not be saved: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/admin/settings/general")
		return
	}

	// Display options changed; cached fragments are stale.
	cache.Clear()

	state.Global.PushNotice("success", "Settings saved.")
	c.Redirect(http.StatusSeeOther, "/admin/settings/general")
}

// ShowDefaultsPage renders the defaults/SEO settings form.
func ShowDefaultsPage(c *gin.Context) {
	if !canManageOptions(c) {
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	renderPage(c, "defaults", pageData{
		Title:    "Defaults & SEO",
		Active:   "defaults",
		Nonce:    nonces.Create(ActionSaveDefaults, sessionToken(c)),
		Settings: service.GlobalServices.Settings.Defaults(),
	})
}

// SaveDefaultsPage handles the defaults/SEO form POST under the same silent
// skip rules as SaveGeneralPage.
func SaveDefaultsPage(c *gin.Context) {
	if !canManageOptions(c) || !nonces.Verify(c.PostForm("nonce"), ActionSaveDefaults, sessionToken(c)) {
		c.Redirect(http.StatusSeeOther, "/admin/settings/defaults")
		return
	}

	var form models.DefaultSettingsForm
	if err := c.ShouldBind(&form); err != nil {
		state.Global.PushNotice("warning", "Could not read the submitted form.")
		c.Redirect(http.StatusSeeOther, "/admin/settings/defaults")
		return
	}

	if err := service.GlobalServices.Settings.SaveDefaults(form); err != nil {
		state.Global.PushNotice("warning", "Settings could not be saved: "+err.Error())
		c.Redirect(http.StatusSeeOther, "/admin/settings/defaults")
		return
	}

	// The gallery base may have changed; rebuild public routes.
	if slugs, err := service.GlobalServices.Gallery.PublishedSlugs(); err == nil {
		rewrites.Rebuild(service.GlobalServices.Settings.Defaults().GalleryBase, slugs)
	}
	cache.Clear()

	state.Global.PushNotice("success", "Settings saved.")
	c.Redirect(http.StatusSeeOther, "/admin/settings/defaults")
}

// ShowToolsPage renders the debug tools page.
func ShowToolsPage(c *gin.Context) {
	if !canManageOptions(c) {
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	renderPage(c, "tools", pageData{
		Title:  "Debug Tools",
		Active: "tools",
		Nonce:  nonces.Create(ActionDebugTools, sessionToken(c)),
		Tools:  registry.Names(),
	})
}
