package http

import (
	"github.com/gin-gonic/gin"

	"nextstep/pkg/response"
	"nextstep/pkg/scope"
)

// Message godoc
// @Summary     Send a chat message
// @Description Sends one message to the AI counselor and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "User message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     503 {object} response.Resp "AI service unavailable"
// @Router      /api/v1/chat/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Reply(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reply: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// Persist a detected preference change best effort; the reply already
	// succeeded.
	preferencesUpdated := false
	if output.Update != nil {
		if err := h.prefUC.UpdateDescription(ctx, sc, output.Update.PreferencesDescription); err != nil {
			h.l.Warnf(ctx, "prefUC.UpdateDescription: %v", err)
		} else {
			preferencesUpdated = true
		}
	}

	response.OK(c, h.newMessageResp(output, preferencesUpdated))
}

// History godoc
// @Summary     Get chat history
// @Description Returns the caller's conversation transcript, oldest first.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} historyResp
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.History(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearHistory godoc
// @Summary     Clear chat history
// @Description Deletes the caller's conversation transcript.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/chat/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.FromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.ClearHistory(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
