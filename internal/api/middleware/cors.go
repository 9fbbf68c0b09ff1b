package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const corsMaxAgeSeconds = "86400"

// CORS lets browser clients on allowedOrigin call the API. "*" allows any origin.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case allowedOrigin == "*":
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && origin == allowedOrigin:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		c.Header("Access-Control-Max-Age", corsMaxAgeSeconds)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
