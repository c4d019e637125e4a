package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nextstep/pkg/response"
	"nextstep/pkg/scope"
)

// Upsert godoc
// @Summary     Create or update preferences
// @Description Creates or replaces the caller's study preferences. At most one current record per user.
// @Tags        Preferences
// @Accept      json
// @Produce     json
// @Param       body body upsertReq true "Preference data"
// @Success     200 {object} upsertResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/preferences [POST]
func (h *handler) Upsert(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpsertReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Upsert(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Upsert: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpsertResp(output))
}

// Get godoc
// @Summary     Get current preferences
// @Description Returns the caller's current preference record.
// @Tags        Preferences
// @Produce     json
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/preferences [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Detail godoc
// @Summary     Get preferences by ID
// @Description Returns one preference record by ID, scoped to the caller.
// @Tags        Preferences
// @Produce     json
// @Param       id path string true "Preference ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/preferences/{id} [GET]
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

	output, err := h.uc.GetByID(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetByID: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}
