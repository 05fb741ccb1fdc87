package repository

import (
	"context"

	"board-backend/internal/domains/comment/model"
)

// Repository defines the comment side of the content aggregate store.
type Repository interface {
	// Create inserts a new comment; the returned entity carries the
	// assigned identifier.
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)

	// ListByArticle returns the article's comments joined with their
	// authors, in ascending id order (creation sequence). An unknown
	// article id yields an empty slice, never an error.
	ListByArticle(ctx context.Context, articleID int64) ([]model.CommentWithAuthor, error)

	// Delete removes a comment. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of comments.
	Count(ctx context.Context) (int64, error)
}
