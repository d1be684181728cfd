package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Repository is the Postgres-backed implementation of the storage interfaces.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}
