package repository

import (
	"context"
	"time"

	"board-backend/internal/domains/article/model"
	"board-backend/internal/shared/pagination"
)

// Repository defines the article side of the content aggregate store.
type Repository interface {
	// Create inserts a new article; the returned entity carries the
	// assigned identifier and the persisted audit fields.
	Create(ctx context.Context, article *model.Article) (*model.Article, error)

	// GetByID retrieves an article joined with its author.
	// Errors: model.ErrArticleNotFound (wrapping the requested id).
	GetByID(ctx context.Context, id int64) (*model.ArticleWithAuthor, error)

	// Search executes the resolved search query with pagination and
	// returns the page rows plus the total match count. The default
	// sort (empty PageRequest.Sort) is id descending, newest first.
	Search(ctx context.Context, q model.SearchQuery, page pagination.PageRequest) ([]model.ArticleWithAuthor, int64, error)

	// UpdatePartial applies the patch to the row with the given id in
	// a single conditional statement, without reading it first, and
	// restamps the modification audit pair. Returns false when no such
	// row exists; that is not an error here. This is the
	// lazy-reference update path: existence surfaces only when the
	// statement touches the row.
	UpdatePartial(ctx context.Context, id int64, patch model.ArticlePatch, actor string, now time.Time) (bool, error)

	// Delete removes the article and every comment referencing it in
	// one transaction. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of articles.
	Count(ctx context.Context) (int64, error)

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
