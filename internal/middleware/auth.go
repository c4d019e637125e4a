package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"nextstep/pkg/response"
	"nextstep/pkg/scope"
)

// Auth verifies the Bearer token and stores the owner scope in the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.scope.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		scope.SetToContext(c, sc)
		c.Next()
	}
}
