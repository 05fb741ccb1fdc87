package service

import (
	"context"

	"board-backend/internal/domains/comment/model"
)

// Service orchestrates the comment lifecycle.
type Service interface {
	// SearchCommentsByArticle returns the article's comments in stable
	// creation order. An unknown article id yields an empty slice,
	// never an error; reads fail soft.
	SearchCommentsByArticle(ctx context.Context, articleID int64) ([]model.CommentResponse, error)

	// CreateComment persists a comment under the given article, owned
	// by the acting identity's author record. Unlike reads, creation
	// resolves its parents and propagates their absence.
	// Errors: article model.ErrArticleNotFound,
	// author model.ErrAuthorNotFound for an unknown actor,
	// validation errors.
	CreateComment(ctx context.Context, actor string, articleID int64, req *model.CreateCommentRequest) (int64, error)

	// DeleteComment removes a comment. Idempotent.
	DeleteComment(ctx context.Context, commentID int64) error
}
