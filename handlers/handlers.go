package handlers

import (
	"net/http"
	"time"

	"beforeafter/auth"
	"beforeafter/core"
	"beforeafter/tools"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the admin session token.
const SessionCookie = "ba_session"

// Nonce action names, one per protected operation.
const (
	ActionSaveGeneral  = "save-general"
	ActionSaveDefaults = "save-defaults"
	ActionDebugTools   = "debug-tools"
)

// Package-level collaborators, wired once from main.
var (
	authMgr  *auth.Manager
	nonces   *auth.NonceService
	registry *tools.Registry
	cache    *core.RenderCache
	rewrites *core.RewriteRules
)

// Init wires the handler package to its collaborators.
func Init(a *auth.Manager, n *auth.NonceService, reg *tools.Registry, rc *core.RenderCache, rr *core.RewriteRules) {
	authMgr = a
	nonces = n
	registry = reg
	cache = rc
	rewrites = rr
}

// sessionToken extracts the admin session token from the request cookie.
func sessionToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

// canManageOptions reports whether the request holds the capability every
// settings save and debug tool requires.
func canManageOptions(c *gin.Context) bool {
	return authMgr.Can(sessionToken(c), auth.CapManageOptions)
}

// ShowLoginPage renders the login form.
func ShowLoginPage(c *gin.Context) {
	if canManageOptions(c) {
		c.Redirect(http.StatusSeeOther, "/admin/settings/general")
		return
	}
	c.HTML(http.StatusOK, "login", gin.H{"Error": ""})
}

// Login verifies the admin password and sets the session cookie.
func Login(c *gin.Context) {
	token, expires, err := authMgr.Login(c.PostForm("password"))
	if err != nil {
		core.LogWarn("Auth", "Failed admin login", c.ClientIP())
		c.HTML(http.StatusOK, "login", gin.H{"Error": "Invalid password."})
		return
	}

	maxAge := int(time.Until(expires).Seconds())
	c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/settings/general")
}

// Logout drops the session and clears the cookie.
func Logout(c *gin.Context) {
	authMgr.Logout(sessionToken(c))
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// GetNonce issues a nonce for a named action to the current session. Scripted
// clients use this instead of scraping it from a page render.
func GetNonce(c *gin.Context) {
	if !canManageOptions(c) {
		respondFail(c, http.StatusForbidden, "Not allowed")
		return
	}

	action := c.Query("action")
	switch action {
	case ActionSaveGeneral, ActionSaveDefaults, ActionDebugTools:
	default:
		respondFail(c, http.StatusBadRequest, "Unknown nonce action")
		return
	}

	respondOK(c, gin.H{"action": action, "nonce": nonces.Create(action, sessionToken(c))})
}
