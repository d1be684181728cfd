package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/007VICKY007/Swipe-Prototype/internal/storage"
	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) CreateSession(ctx context.Context, s *model.Session) error {
	questions, err := json.Marshal(s.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	const q = `
INSERT INTO sessions (
	id, candidate_id, role, started_at, questions, finished, final_score, summary
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err = r.db.Exec(ctx, q,
		s.ID, s.CandidateID, s.Role, s.StartedAt, questions, s.Finished, s.FinalScore, s.Summary,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *Repository) GetSession(ctx context.Context, id string) (*model.Session, error) {
	const q = `
SELECT id, candidate_id, role, started_at, questions, finished, final_score, summary
FROM sessions WHERE id = $1
`
	s, err := scanSession(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

func (r *Repository) UpdateSession(ctx context.Context, s *model.Session) error {
	questions, err := json.Marshal(s.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	const q = `
UPDATE sessions
SET questions = $2, finished = $3, final_score = $4, summary = $5
WHERE id = $1
`
	tag, err := r.db.Exec(ctx, q, s.ID, questions, s.Finished, s.FinalScore, s.Summary)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrSessionNotFound
	}
	return nil
}

func (r *Repository) ListSessions(ctx context.Context) ([]model.Session, error) {
	const q = `
SELECT id, candidate_id, role, started_at, questions, finished, final_score, summary
FROM sessions ORDER BY started_at
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *Repository) ListSessionsByCandidate(ctx context.Context, candidateID string) ([]model.Session, error) {
	const q = `
SELECT id, candidate_id, role, started_at, questions, finished, final_score, summary
FROM sessions WHERE candidate_id = $1 ORDER BY started_at
`
	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, fmt.Errorf("query sessions by candidate: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

func scanSession(row pgx.Row) (*model.Session, error) {
	var s model.Session
	var questions []byte
	if err := row.Scan(&s.ID, &s.CandidateID, &s.Role, &s.StartedAt, &questions, &s.Finished, &s.FinalScore, &s.Summary); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(questions, &s.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return &s, nil
}

func collectSessions(rows pgx.Rows) ([]model.Session, error) {
	out := make([]model.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, *s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
