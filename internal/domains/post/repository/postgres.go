package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"blogpost-backend/internal/domains/post/model"
)

const (
	listPostsQuery = `
		SELECT id, title, content, author
		FROM posts
	`

	getPostQuery = `
		SELECT id, title, content, author
		FROM posts
		WHERE id = $1
	`

	insertPostQuery = `
		INSERT INTO posts (title, content, author)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	updatePostQuery = `
		UPDATE posts
		SET title = $1, content = $2, author = $3
		WHERE id = $4
		RETURNING id, title, content, author
	`

	deletePostQuery = `
		DELETE FROM posts
		WHERE id = $1
	`
)

type postgresRepository struct {
	db DBTX
}

// NewPostgresRepository builds the repository on a pgx pool (or any DBTX)
func NewPostgresRepository(db DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", model.ErrStoreUnavailable, op, err)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.Query(ctx, listPostsQuery)
	if err != nil {
		return nil, storeError("list posts", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author); err != nil {
			return nil, storeError("scan post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate posts", err)
	}

	return posts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	var p model.Post
	err := r.db.QueryRow(ctx, getPostQuery, id).Scan(&p.ID, &p.Title, &p.Content, &p.Author)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, storeError("get post", err)
	}
	return &p, nil
}

func (r *postgresRepository) Insert(ctx context.Context, title, content, author string) (*model.Post, error) {
	p := model.Post{Title: title, Content: content, Author: author}
	if err := r.db.QueryRow(ctx, insertPostQuery, title, content, author).Scan(&p.ID); err != nil {
		return nil, storeError("insert post", err)
	}
	return &p, nil
}

func (r *postgresRepository) UpdateByID(ctx context.Context, id int64, title, content, author string) (*model.Post, error) {
	var p model.Post
	err := r.db.QueryRow(ctx, updatePostQuery, title, content, author, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.Author)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, storeError("update post", err)
	}
	return &p, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, deletePostQuery, id)
	if err != nil {
		return 0, storeError("delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, model.ErrPostNotFound
	}
	return id, nil
}
