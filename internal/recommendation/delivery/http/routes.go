package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Generation is also rate limited since it spends AI quota.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	recs := rg.Group("/recommendations")
	{
		recs.POST("/generate", mw.Auth(), mw.RateLimit(), h.Generate)
		recs.GET("", mw.Auth(), h.List)
		recs.GET("/stats", mw.Auth(), h.Stats)
		recs.GET("/:id", mw.Auth(), h.Detail)
		recs.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
