package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/internal/preference"
	"nextstep/pkg/log"
)

// Handler is the public interface for the preference HTTP delivery layer.
type Handler interface {
	Upsert(c *gin.Context)
	Get(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc preference.UseCase
}

// New creates a new HTTP handler for the preference domain.
func New(l log.Logger, uc preference.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
