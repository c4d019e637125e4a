package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated owner.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	prefs := rg.Group("/preferences")
	{
		prefs.POST("", mw.Auth(), h.Upsert)
		prefs.GET("", mw.Auth(), h.Get)
		prefs.GET("/:id", mw.Auth(), h.Detail)
	}
}
