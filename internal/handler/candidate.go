package handler

import (
	"time"

	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/007VICKY007/Swipe-Prototype/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateCandidate registers a candidate profile. The profile text arrives
// pre-extracted; this handler is a thin pass-through to the store.
func (h *Handler) CreateCandidate(c *gin.Context) {
	var req model.CreateCandidateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("create candidate bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	cand := &model.Candidate{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProfileText: req.ProfileText,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.Candidates.CreateCandidate(c.Request.Context(), cand); err != nil {
		h.Logger.Sugar().Errorw("create candidate failed", "err", err)
		response.InternalError(c, "Failed to create candidate")
		return
	}

	response.Created(c, cand)
}
