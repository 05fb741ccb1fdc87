package service

import (
	"context"

	"board-backend/internal/domains/article/model"
	"board-backend/internal/shared/pagination"
)

// Service orchestrates search dispatch, pagination and the article
// lifecycle, translating entities to transfer objects.
type Service interface {
	// SearchArticles resolves the search type and keyword once, runs
	// the paginated query and maps rows to summaries. A blank keyword
	// returns the unfiltered listing; no match is an empty page, never
	// an error.
	// Errors: model.ErrInvalidSearchType, pagination.ErrInvalidPageSize.
	SearchArticles(ctx context.Context, searchType model.SearchType, keyword string, page pagination.PageRequest) (pagination.Page[model.ArticleSummary], error)

	// GetArticleWithComments returns the article plus its comments in
	// stable creation order. An article deleted between the two reads
	// surfaces as not-found, never as a partial detail.
	// Errors: model.ErrArticleNotFound carrying the requested id.
	GetArticleWithComments(ctx context.Context, articleID int64) (*model.ArticleDetail, error)

	// CreateArticle persists a new article owned by the acting
	// identity's author record.
	// Errors: validation errors (blank title/content),
	// author model.ErrAuthorNotFound for an unknown actor.
	CreateArticle(ctx context.Context, actor string, req *model.CreateArticleRequest) (int64, error)

	// UpdateArticle applies the present fields of the patch to the
	// article, without reading it first. A missing article is a logged
	// no-op by design, not an error.
	UpdateArticle(ctx context.Context, actor string, articleID int64, req *model.UpdateArticleRequest) error

	// DeleteArticle removes the article and its comments. Idempotent.
	DeleteArticle(ctx context.Context, articleID int64) error
}
