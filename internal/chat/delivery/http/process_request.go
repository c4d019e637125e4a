package http

import (
	"github.com/gin-gonic/gin"
)

// processMessageReq binds and validates the chat message request body.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
