package model

import "time"

// LastInterview is written onto a candidate exactly once per session, at the
// moment the session finishes. A later session overwrites it.
type LastInterview struct {
	SessionID  string    `json:"sessionId"`
	FinalScore float64   `json:"finalScore"`
	Summary    string    `json:"summary"`
	Date       time.Time `json:"date"`
}

type Candidate struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	ProfileText   string         `json:"profileText,omitempty"`
	LastInterview *LastInterview `json:"lastInterview,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type CreateCandidateReq struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	ProfileText string `json:"profileText"`
}

// CandidateSummary is the reviewer-facing listing row. ProfileText is
// deliberately left out.
type CandidateSummary struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	LastInterview *LastInterview `json:"lastInterview"`
}

type CandidateDetailRes struct {
	Candidate *Candidate `json:"candidate"`
	Sessions  []Session  `json:"sessions"`
}

type DashboardStats struct {
	TotalCandidates   int     `json:"totalCandidates"`
	TotalSessions     int     `json:"totalSessions"`
	CompletedSessions int     `json:"completedSessions"`
	AverageScore      float64 `json:"averageScore"`
}

type SessionReviewRes struct {
	Session   *Session   `json:"session"`
	Candidate *Candidate `json:"candidate"`
}

type CandidateReportRes struct {
	Candidate *Candidate `json:"candidate"`
	Sessions  []Session  `json:"sessions"`
	Report    string     `json:"report"`
}
