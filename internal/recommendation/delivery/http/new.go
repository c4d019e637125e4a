package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/internal/recommendation"
	"nextstep/pkg/log"
)

// Handler is the public interface for the recommendation HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Delete(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc recommendation.UseCase
}

// New creates a new HTTP handler for the recommendation domain.
func New(l log.Logger, uc recommendation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
