package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	uni := rg.Group("/university")
	{
		uni.POST("/details", mw.Auth(), mw.RateLimit(), h.Details)
	}
}
