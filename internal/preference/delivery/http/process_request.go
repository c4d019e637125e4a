package http

import (
	"github.com/gin-gonic/gin"
)

// processUpsertReq binds and validates the upsert preferences request body.
func (h *handler) processUpsertReq(c *gin.Context) (upsertReq, error) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
