package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds and validates the generate request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds pagination query params.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
