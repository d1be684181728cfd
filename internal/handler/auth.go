package handler

import (
	"errors"
	"time"

	"github.com/007VICKY007/Swipe-Prototype/internal/auth"
	"github.com/007VICKY007/Swipe-Prototype/internal/storage"
	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/007VICKY007/Swipe-Prototype/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SignUp creates a reviewer account
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("signup bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	pwHash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	reviewer := &model.Reviewer{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: pwHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.Reviewers.CreateReviewer(c.Request.Context(), reviewer); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			response.BadRequest(c, "email already registered")
			return
		}
		h.Logger.Sugar().Errorw("reviewer create failed", "email", req.Email, "err", err)
		response.BadRequest(c, "could not create reviewer")
		return
	}

	response.Message(c, "reviewer created successfully")
}

// Login verifies credentials and returns JWT
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	reviewer, err := h.Reviewers.GetReviewerByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.Logger.Sugar().Warnw("login reviewer not found", "email", req.Email, "err", err)
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := auth.ComparePassword(reviewer.PasswordHash, req.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "email", req.Email, "err", err)
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, claims, err := auth.GenerateToken(h.JwtSecret, reviewer.ID, reviewer.Email, h.JwtTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.TokenRes{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Unix(),
	})
}
