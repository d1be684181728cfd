package handler

import (
	"context"
	"time"

	"github.com/007VICKY007/Swipe-Prototype/internal/engine"
	"github.com/007VICKY007/Swipe-Prototype/internal/storage"
	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"go.uber.org/zap"
)

// ReportGenerator produces the reviewer-facing hiring report. Failures are
// absorbed with a fixed fallback text, same policy as the core collaborators.
type ReportGenerator interface {
	HiringReport(ctx context.Context, cand *model.Candidate, sessions []model.Session) (string, error)
}

type Handler struct {
	Logger     *zap.Logger
	Engine     *engine.Engine
	Sessions   storage.SessionStore
	Candidates storage.CandidateStore
	Reviewers  storage.ReviewerStore
	Reports    ReportGenerator
	JwtSecret  string
	JwtTTL     time.Duration
}
