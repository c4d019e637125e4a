package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Messages are rate limited since each one spends AI quota.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ch := rg.Group("/chat")
	{
		ch.POST("/message", mw.Auth(), mw.RateLimit(), h.Message)
		ch.GET("/history", mw.Auth(), h.History)
		ch.DELETE("/history", mw.Auth(), h.ClearHistory)
	}
}
