package service

import (
	"context"

	"blogpost-backend/internal/domains/post/model"
)

// ServiceInterface is the post use-case layer used by the HTTP handler.
// Create and Update validate the request before any store access.
// An id <= 0 never matches a row and is reported as model.ErrPostNotFound.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id int64) (*model.Post, error)
	Create(ctx context.Context, req model.PostRequest) (*model.Post, error)
	Update(ctx context.Context, id int64, req model.PostRequest) (*model.Post, error)
	Delete(ctx context.Context, id int64) (*model.DeleteResult, error)
}
