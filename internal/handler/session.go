package handler

import (
	"errors"

	"github.com/007VICKY007/Swipe-Prototype/internal/engine"
	"github.com/007VICKY007/Swipe-Prototype/internal/storage"
	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/007VICKY007/Swipe-Prototype/pkg/response"
	"github.com/gin-gonic/gin"
)

// StartSession creates a new interview session. Provider failures never
// surface here; the engine substitutes the built-in question set.
func (h *Handler) StartSession(c *gin.Context) {
	var req model.StartSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("start session bad request", "err", err)
		response.BadRequest(c, "Candidate ID and role are required")
		return
	}

	session, err := h.Engine.Start(c.Request.Context(), req.CandidateID, req.Role)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidRequest) {
			response.BadRequest(c, err.Error())
			return
		}
		h.Logger.Sugar().Errorw("session start failed", "candidate_id", req.CandidateID, "err", err)
		response.InternalError(c, "Failed to start interview session")
		return
	}

	response.OK(c, model.SessionRes{Session: session})
}

// SubmitAnswer records one answer and returns the full updated session.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	var req model.SubmitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("submit answer bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	session, err := h.Engine.SubmitAnswer(c.Request.Context(), req.SessionID, req.QuestionIndex, req.Answer, req.AutoSubmitted)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrSessionNotFound):
			response.NotFound(c, "Session not found")
		case errors.Is(err, engine.ErrQuestionNotFound):
			response.NotFound(c, "Question not found")
		default:
			h.Logger.Sugar().Errorw("submit answer failed", "session_id", req.SessionID, "err", err)
			response.InternalError(c, "Failed to submit answer")
		}
		return
	}

	response.OK(c, model.SessionRes{Session: session})
}

func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.Sessions.ListSessions(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("list sessions failed", "err", err)
		response.InternalError(c, "Failed to fetch sessions")
		return
	}
	response.OK(c, sessions)
}

func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			response.NotFound(c, "Session not found")
			return
		}
		h.Logger.Sugar().Errorw("get session failed", "session_id", c.Param("id"), "err", err)
		response.InternalError(c, "Failed to fetch session")
		return
	}
	response.OK(c, session)
}
