package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nextstep/pkg/response"
	"nextstep/pkg/scope"
)

// Generate godoc
// @Summary     Generate recommendations
// @Description Generates a fresh university recommendation set from the caller's preferences. Replaces any previous sets.
// @Tags        Recommendations
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Preference reference"
// @Success     200 {object} generateResp
// @Failure     404 {object} response.Resp "Preferences not found"
// @Failure     503 {object} response.Resp "AI service unavailable"
// @Router      /api/v1/recommendations/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// List godoc
// @Summary     List recommendations
// @Description Returns the caller's recommendation sets, newest first.
// @Tags        Recommendations
// @Produce     json
// @Param       page query int false "Page number"
// @Param       limit query int false "Page size"
// @Success     200 {object} listResp
// @Router      /api/v1/recommendations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Recommendation statistics
// @Description Aggregates the caller's generation history.
// @Tags        Recommendations
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/recommendations/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Detail godoc
// @Summary     Get recommendation by ID
// @Description Returns one recommendation set by ID, scoped to the caller.
// @Tags        Recommendations
// @Produce     json
// @Param       id path string true "Recommendation ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/recommendations/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete recommendation
// @Description Deletes one recommendation set the caller owns.
// @Tags        Recommendations
// @Produce     json
// @Param       id path string true "Recommendation ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/recommendations/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
