package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the AJAX envelope: success with a result payload, or failure
// with a human-readable message in data.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Data: message})
}
