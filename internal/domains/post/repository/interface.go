package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blogpost-backend/internal/domains/post/model"
)

// DBTX is the subset of *pgxpool.Pool the repository needs. Every call
// borrows one pooled connection for a single statement.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RepositoryInterface is the post data access contract.
// Every method issues exactly one parameterized statement. Driver failures
// are wrapped in model.ErrStoreUnavailable.
type RepositoryInterface interface {
	// ListAll returns every row in store order (no ORDER BY)
	ListAll(ctx context.Context) ([]model.Post, error)

	// GetByID returns model.ErrPostNotFound if no row has id
	GetByID(ctx context.Context, id int64) (*model.Post, error)

	// Insert returns the stored post with its assigned id
	Insert(ctx context.Context, title, content, author string) (*model.Post, error)

	// UpdateByID replaces all three text fields.
	// Returns model.ErrPostNotFound if no row matched.
	UpdateByID(ctx context.Context, id int64, title, content, author string) (*model.Post, error)

	// DeleteByID returns the deleted id, or model.ErrPostNotFound
	DeleteByID(ctx context.Context, id int64) (int64, error)
}
