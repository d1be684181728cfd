package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
)

// MemoryStore keeps everything in process memory. It backs the tests and the
// terminal client, and is safe for concurrent use.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string]*model.Session
	candidates map[string]*model.Candidate
	reviewers  map[string]*model.Reviewer
	order      []string // session ids in creation order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]*model.Session),
		candidates: make(map[string]*model.Candidate),
		reviewers:  make(map[string]*model.Reviewer),
	}
}

func cloneSession(s *model.Session) *model.Session {
	cp := *s
	cp.Questions = make([]model.Question, len(s.Questions))
	copy(cp.Questions, s.Questions)
	return &cp
}

func cloneCandidate(c *model.Candidate) *model.Candidate {
	cp := *c
	if c.LastInterview != nil {
		li := *c.LastInterview
		cp.LastInterview = &li
	}
	return &cp
}

func (m *MemoryStore) CreateSession(ctx context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = cloneSession(s)
	m.order = append(m.order, s.ID)
	return nil
}

func (m *MemoryStore) GetSession(ctx context.Context, id string) (*model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (m *MemoryStore) UpdateSession(ctx context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.ID]; !ok {
		return ErrSessionNotFound
	}
	m.sessions[s.ID] = cloneSession(s)
	return nil
}

func (m *MemoryStore) ListSessions(ctx context.Context) ([]model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Session, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *cloneSession(m.sessions[id]))
	}
	return out, nil
}

func (m *MemoryStore) ListSessionsByCandidate(ctx context.Context, candidateID string) ([]model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Session, 0)
	for _, id := range m.order {
		if m.sessions[id].CandidateID == candidateID {
			out = append(out, *cloneSession(m.sessions[id]))
		}
	}
	return out, nil
}

func (m *MemoryStore) CreateCandidate(ctx context.Context, c *model.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates[c.ID] = cloneCandidate(c)
	return nil
}

func (m *MemoryStore) GetCandidate(ctx context.Context, id string) (*model.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.candidates[id]
	if !ok {
		return nil, ErrCandidateNotFound
	}
	return cloneCandidate(c), nil
}

func (m *MemoryStore) UpdateCandidate(ctx context.Context, c *model.Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.candidates[c.ID]; !ok {
		return ErrCandidateNotFound
	}
	m.candidates[c.ID] = cloneCandidate(c)
	return nil
}

func (m *MemoryStore) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Candidate, 0, len(m.candidates))
	for _, c := range m.candidates {
		out = append(out, *cloneCandidate(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) CreateReviewer(ctx context.Context, r *model.Reviewer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.reviewers {
		if existing.Email == r.Email {
			return ErrDuplicateEmail
		}
	}
	cp := *r
	m.reviewers[r.ID] = &cp
	return nil
}

func (m *MemoryStore) GetReviewerByEmail(ctx context.Context, email string) (*model.Reviewer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.reviewers {
		if r.Email == email {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrReviewerNotFound
}

func (m *MemoryStore) GetReviewerByID(ctx context.Context, id string) (*model.Reviewer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.reviewers[id]
	if !ok {
		return nil, ErrReviewerNotFound
	}
	cp := *r
	return &cp, nil
}
