package handler

import (
	"errors"
	"sort"

	"github.com/007VICKY007/Swipe-Prototype/internal/storage"
	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/007VICKY007/Swipe-Prototype/pkg/response"
	"github.com/gin-gonic/gin"
)

// reportFallback is returned when the report generator is unavailable.
const reportFallback = "Report generation unavailable. Manual review recommended."

func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sessions, err := h.Sessions.ListSessions(ctx)
	if err != nil {
		h.Logger.Sugar().Errorw("dashboard sessions failed", "err", err)
		response.InternalError(c, "Failed to fetch dashboard data")
		return
	}
	candidates, err := h.Candidates.ListCandidates(ctx)
	if err != nil {
		h.Logger.Sugar().Errorw("dashboard candidates failed", "err", err)
		response.InternalError(c, "Failed to fetch dashboard data")
		return
	}

	stats := model.DashboardStats{
		TotalCandidates: len(candidates),
		TotalSessions:   len(sessions),
	}
	var total float64
	var scored int
	for _, s := range sessions {
		if s.Finished {
			stats.CompletedSessions++
			if s.FinalScore != nil {
				total += *s.FinalScore
				scored++
			}
		}
	}
	if scored > 0 {
		stats.AverageScore = total / float64(scored)
	}

	response.OK(c, stats)
}

// ListCandidates returns the reviewer-facing summary rows sorted by last
// interview score descending; candidates with no score sort as 0.
func (h *Handler) ListCandidates(c *gin.Context) {
	candidates, err := h.Candidates.ListCandidates(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("list candidates failed", "err", err)
		response.InternalError(c, "Failed to fetch candidates")
		return
	}

	list := make([]model.CandidateSummary, 0, len(candidates))
	for _, cand := range candidates {
		list = append(list, model.CandidateSummary{
			ID:            cand.ID,
			Name:          cand.Name,
			Email:         cand.Email,
			Phone:         cand.Phone,
			LastInterview: cand.LastInterview,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return candidateScore(list[i].LastInterview) > candidateScore(list[j].LastInterview)
	})

	response.OK(c, list)
}

func candidateScore(li *model.LastInterview) float64 {
	if li == nil {
		return 0
	}
	return li.FinalScore
}

func (h *Handler) GetCandidate(c *gin.Context) {
	ctx := c.Request.Context()

	cand, err := h.Candidates.GetCandidate(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrCandidateNotFound) {
			response.NotFound(c, "Candidate not found")
			return
		}
		h.Logger.Sugar().Errorw("get candidate failed", "candidate_id", c.Param("id"), "err", err)
		response.InternalError(c, "Failed to fetch candidate details")
		return
	}

	sessions, err := h.Sessions.ListSessionsByCandidate(ctx, cand.ID)
	if err != nil {
		h.Logger.Sugar().Errorw("candidate sessions failed", "candidate_id", cand.ID, "err", err)
		response.InternalError(c, "Failed to fetch candidate details")
		return
	}

	response.OK(c, model.CandidateDetailRes{Candidate: cand, Sessions: sessions})
}

// CandidateReport returns the candidate, their sessions and an AI-written
// hiring report. Generator failure degrades to a fixed fallback text instead
// of an error.
func (h *Handler) CandidateReport(c *gin.Context) {
	ctx := c.Request.Context()

	cand, err := h.Candidates.GetCandidate(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrCandidateNotFound) {
			response.NotFound(c, "Candidate not found")
			return
		}
		h.Logger.Sugar().Errorw("report candidate failed", "candidate_id", c.Param("id"), "err", err)
		response.InternalError(c, "Failed to generate report")
		return
	}

	sessions, err := h.Sessions.ListSessionsByCandidate(ctx, cand.ID)
	if err != nil {
		h.Logger.Sugar().Errorw("report sessions failed", "candidate_id", cand.ID, "err", err)
		response.InternalError(c, "Failed to generate report")
		return
	}

	report, err := h.Reports.HiringReport(ctx, cand, sessions)
	if err != nil {
		h.Logger.Sugar().Warnw("report generation failed, using fallback", "candidate_id", cand.ID, "err", err)
		report = reportFallback
	}

	response.OK(c, model.CandidateReportRes{Candidate: cand, Sessions: sessions, Report: report})
}

// SessionReview returns a session together with its owning candidate.
func (h *Handler) SessionReview(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.Sessions.GetSession(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			response.NotFound(c, "Session not found")
			return
		}
		h.Logger.Sugar().Errorw("session review failed", "session_id", c.Param("id"), "err", err)
		response.InternalError(c, "Failed to fetch session review")
		return
	}

	cand, err := h.Candidates.GetCandidate(ctx, session.CandidateID)
	if err != nil && !errors.Is(err, storage.ErrCandidateNotFound) {
		h.Logger.Sugar().Errorw("session review candidate failed", "session_id", session.ID, "err", err)
		response.InternalError(c, "Failed to fetch session review")
		return
	}

	response.OK(c, model.SessionReviewRes{Session: session, Candidate: cand})
}
