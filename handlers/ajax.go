package handlers

import (
	"errors"
	"net/http"

	"beforeafter/auth"
	"beforeafter/core"

	"github.com/gin-gonic/gin"
)

// DispatchTool is the AJAX endpoint behind the debug tools page. It expects a
// form POST with nonce, tool and tool_action fields; every other field is
// passed through to the handler as payload.
func DispatchTool(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session := sessionToken(c)
	if !authMgr.Can(session, auth.CapManageOptions) {
		respondFail(c, http.StatusForbidden, "Not allowed")
		return
	}
	if !nonces.Verify(c.PostForm("nonce"), ActionDebugTools, session) {
		respondFail(c, http.StatusForbidden, "Invalid or expired nonce")
		return
	}

	tool := c.PostForm("tool")
	action := c.PostForm("tool_action")
	if tool == "" || action == "" {
		respondFail(c, http.StatusBadRequest, "tool and tool_action are required")
		return
	}

	payload := make(map[string]string)
	for key, values := range c.Request.PostForm {
		switch key {
		case "nonce", "tool", "tool_action":
			continue
		}
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}

	result, err := registry.Dispatch(tool, action, payload)
	if err != nil {
		if errors.Is(err, core.ErrUnknownTool) {
			respondFail(c, http.StatusBadRequest, err.Error())
			return
		}
		// Handler failures come back as a failure envelope with the message.
		respondFail(c, http.StatusOK, err.Error())
		return
	}

	respondOK(c, result)
}
