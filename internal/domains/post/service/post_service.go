package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"blogpost-backend/internal/domains/post/model"
	"blogpost-backend/internal/domains/post/repository"
)

type postService struct {
	repo repository.RepositoryInterface
}

func NewPostService(repo repository.RepositoryInterface) ServiceInterface {
	return &postService{repo: repo}
}

// logStoreError records the raw driver error; callers only ever see the
// generic ErrStoreUnavailable message.
func logStoreError(ctx context.Context, op string, err error) {
	if err == nil || !errors.Is(err, model.ErrStoreUnavailable) {
		return
	}
	log.Ctx(ctx).Error().Err(err).Str("op", op).Msg("Post store failure")
}

func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.repo.ListAll(ctx)
	logStoreError(ctx, "list", err)
	return posts, err
}

func (s *postService) Get(ctx context.Context, id int64) (*model.Post, error) {
	if id <= 0 {
		return nil, model.ErrPostNotFound
	}
	post, err := s.repo.GetByID(ctx, id)
	logStoreError(ctx, "get", err)
	return post, err
}

func (s *postService) Create(ctx context.Context, req model.PostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	post, err := s.repo.Insert(ctx, req.Title, req.Content, req.Author)
	logStoreError(ctx, "create", err)
	return post, err
}

func (s *postService) Update(ctx context.Context, id int64, req model.PostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, model.ErrPostNotFound
	}
	post, err := s.repo.UpdateByID(ctx, id, req.Title, req.Content, req.Author)
	logStoreError(ctx, "update", err)
	return post, err
}

func (s *postService) Delete(ctx context.Context, id int64) (*model.DeleteResult, error) {
	if id <= 0 {
		return nil, model.ErrPostNotFound
	}
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		logStoreError(ctx, "delete", err)
		return nil, err
	}
	return &model.DeleteResult{ID: deleted}, nil
}
