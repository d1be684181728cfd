package storage

import (
	"context"
	"errors"

	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrReviewerNotFound  = errors.New("reviewer not found")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// SessionStore is the durable keyed storage for interview sessions. No
// multi-key transactional guarantee is assumed; concurrent updates to the
// same session are last write wins unless the caller serializes them.
type SessionStore interface {
	CreateSession(ctx context.Context, s *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	UpdateSession(ctx context.Context, s *model.Session) error
	ListSessions(ctx context.Context) ([]model.Session, error)
	ListSessionsByCandidate(ctx context.Context, candidateID string) ([]model.Session, error)
}

// CandidateStore is keyed storage for candidate profiles.
type CandidateStore interface {
	CreateCandidate(ctx context.Context, c *model.Candidate) error
	GetCandidate(ctx context.Context, id string) (*model.Candidate, error)
	UpdateCandidate(ctx context.Context, c *model.Candidate) error
	ListCandidates(ctx context.Context) ([]model.Candidate, error)
}

// ReviewerStore holds interviewer-side accounts.
type ReviewerStore interface {
	CreateReviewer(ctx context.Context, r *model.Reviewer) error
	GetReviewerByEmail(ctx context.Context, email string) (*model.Reviewer, error)
	GetReviewerByID(ctx context.Context, id string) (*model.Reviewer, error)
}
