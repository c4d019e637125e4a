package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/pkg/response"
	"nextstep/pkg/scope"
)

// Details godoc
// @Summary     University details
// @Description Returns a markdown fact sheet for one university.
// @Tags        University
// @Accept      json
// @Produce     json
// @Param       body body detailsReq true "University name"
// @Success     200 {object} detailsResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     503 {object} response.Resp "AI service unavailable"
// @Router      /api/v1/university/details [POST]
func (h *handler) Details(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processDetailsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Details(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Details: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailsResp(output))
}
