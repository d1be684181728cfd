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

func (r *Repository) CreateCandidate(ctx context.Context, c *model.Candidate) error {
	lastInterview, err := marshalLastInterview(c.LastInterview)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO candidates (id, name, email, phone, profile_text, last_interview, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err = r.db.Exec(ctx, q, c.ID, c.Name, c.Email, c.Phone, c.ProfileText, lastInterview, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

func (r *Repository) GetCandidate(ctx context.Context, id string) (*model.Candidate, error) {
	const q = `
SELECT id, name, email, phone, profile_text, last_interview, created_at
FROM candidates WHERE id = $1
`
	c, err := scanCandidate(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

func (r *Repository) UpdateCandidate(ctx context.Context, c *model.Candidate) error {
	lastInterview, err := marshalLastInterview(c.LastInterview)
	if err != nil {
		return err
	}

	const q = `
UPDATE candidates
SET name = $2, email = $3, phone = $4, profile_text = $5, last_interview = $6
WHERE id = $1
`
	tag, err := r.db.Exec(ctx, q, c.ID, c.Name, c.Email, c.Phone, c.ProfileText, lastInterview)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrCandidateNotFound
	}
	return nil
}

func (r *Repository) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	const q = `
SELECT id, name, email, phone, profile_text, last_interview, created_at
FROM candidates ORDER BY created_at
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	out := make([]model.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate row: %w", err)
		}
		out = append(out, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func marshalLastInterview(li *model.LastInterview) ([]byte, error) {
	if li == nil {
		return nil, nil
	}
	b, err := json.Marshal(li)
	if err != nil {
		return nil, fmt.Errorf("marshal last interview: %w", err)
	}
	return b, nil
}

func scanCandidate(row pgx.Row) (*model.Candidate, error) {
	var c model.Candidate
	var lastInterview []byte
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.ProfileText, &lastInterview, &c.CreatedAt); err != nil {
		return nil, err
	}
	if lastInterview != nil {
		if err := json.Unmarshal(lastInterview, &c.LastInterview); err != nil {
			return nil, fmt.Errorf("unmarshal last interview: %w", err)
		}
	}
	return &c, nil
}
