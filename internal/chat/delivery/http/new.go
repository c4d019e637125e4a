package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/internal/chat"
	"nextstep/internal/preference"
	"nextstep/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Message(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     chat.UseCase
	prefUC preference.UseCase
}

// New creates a new HTTP handler for the chat domain. prefUC receives the
// preference updates the counselor detects mid-conversation.
func New(l log.Logger, uc chat.UseCase, prefUC preference.UseCase) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		prefUC: prefUC,
	}
}
