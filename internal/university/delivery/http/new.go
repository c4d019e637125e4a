package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/internal/university"
	"nextstep/pkg/log"
)

// Handler is the public interface for the university HTTP delivery layer.
type Handler interface {
	Details(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc university.UseCase
}

// New creates a new HTTP handler for the university domain.
func New(l log.Logger, uc university.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
