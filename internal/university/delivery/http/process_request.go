package http

import (
	"github.com/gin-gonic/gin"
)

// processDetailsReq binds and validates the details request body.
func (h *handler) processDetailsReq(c *gin.Context) (detailsReq, error) {
	var req detailsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
