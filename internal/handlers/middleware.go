package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	allowMethods = "GET, OPTIONS"
	allowHeaders = "*"
	anyOrigin    = "*"
)

// corsMiddleware sets cross-origin headers from Options.CORSOrigins and
// answers preflight requests directly.
func (h *Handler) corsMiddleware(c *gin.Context) {
	if allowed := h.allowedOrigin(c.GetHeader("Origin")); allowed != "" {
		c.Header("Access-Control-Allow-Origin", allowed)
		if allowed != anyOrigin {
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", allowHeaders)
	}

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// allowedOrigin returns the Access-Control-Allow-Origin value for origin,
// or "" when the origin is not allowed.
func (h *Handler) allowedOrigin(origin string) string {
	for _, o := range h.opts.CORSOrigins {
		if o == anyOrigin {
			return anyOrigin
		}
		if origin != "" && o == origin {
			return origin
		}
	}
	return ""
}
