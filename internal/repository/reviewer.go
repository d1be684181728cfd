package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/007VICKY007/Swipe-Prototype/internal/storage"
	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *Repository) CreateReviewer(ctx context.Context, rev *model.Reviewer) error {
	const q = `
INSERT INTO reviewers (id, email, password_hash, created_at)
VALUES ($1, $2, $3, $4)
`
	_, err := r.db.Exec(ctx, q, rev.ID, rev.Email, rev.PasswordHash, rev.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrDuplicateEmail
		}
		return fmt.Errorf("insert reviewer: %w", err)
	}
	return nil
}

func (r *Repository) GetReviewerByEmail(ctx context.Context, email string) (*model.Reviewer, error) {
	const q = `
SELECT id, email, password_hash, created_at
FROM reviewers WHERE email = $1
`
	var rev model.Reviewer
	row := r.db.QueryRow(ctx, q, email)
	if err := row.Scan(&rev.ID, &rev.Email, &rev.PasswordHash, &rev.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrReviewerNotFound
		}
		return nil, fmt.Errorf("scan reviewer by email: %w", err)
	}
	return &rev, nil
}

func (r *Repository) GetReviewerByID(ctx context.Context, id string) (*model.Reviewer, error) {
	const q = `
SELECT id, email, password_hash, created_at
FROM reviewers WHERE id = $1
`
	var rev model.Reviewer
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&rev.ID, &rev.Email, &rev.PasswordHash, &rev.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrReviewerNotFound
		}
		return nil, fmt.Errorf("scan reviewer by id: %w", err)
	}
	return &rev, nil
}
