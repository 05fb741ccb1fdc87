package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"board-backend/internal/domains/article/model"
	"board-backend/internal/domains/article/repository"
	authorrepo "board-backend/internal/domains/author/repository"
	commentmodel "board-backend/internal/domains/comment/model"
	commentrepo "board-backend/internal/domains/comment/repository"
	"board-backend/internal/shared/pagination"
)

type articleService struct {
	articles repository.Repository
	authors  authorrepo.Repository
	comments commentrepo.Repository
}

func NewArticleService(articles repository.Repository, authors authorrepo.Repository, comments commentrepo.Repository) Service {
	return &articleService{
		articles: articles,
		authors:  authors,
		comments: comments,
	}
}

func (s *articleService) SearchArticles(ctx context.Context, searchType model.SearchType, keyword string, page pagination.PageRequest) (pagination.Page[model.ArticleSummary], error) {
	// Dispatch is resolved exactly once; everything after this sees
	// only the query form.
	query, err := model.ResolveSearch(searchType, keyword)
	if err != nil {
		return pagination.Page[model.ArticleSummary]{}, err
	}

	rows, total, err := s.articles.Search(ctx, query, page)
	if err != nil {
		return pagination.Page[model.ArticleSummary]{}, err
	}

	summaries := make([]model.ArticleSummary, len(rows))
	for i := range rows {
		summaries[i] = rows[i].ToSummary()
	}

	return pagination.NewPage(summaries, page, total), nil
}

func (s *articleService) GetArticleWithComments(ctx context.Context, articleID int64) (*model.ArticleDetail, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	// The article read may have been served from cache, and an empty
	// comment list is also what a concurrent cascade delete leaves
	// behind. Re-check against the store before answering.
	if len(comments) == 0 {
		exists, err := s.articles.ExistsByID(ctx, articleID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w - articleId: %d", model.ErrArticleNotFound, articleID)
		}
	}

	responses := make([]commentmodel.CommentResponse, len(comments))
	for i := range comments {
		responses[i] = comments[i].ToResponse()
	}

	return &model.ArticleDetail{
		ArticleSummary: article.ToSummary(),
		Comments:       responses,
	}, nil
}

func (s *articleService) CreateArticle(ctx context.Context, actor string, req *model.CreateArticleRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	// The owner is whoever authenticated, resolved by login id.
	author, err := s.authors.GetByLoginID(ctx, actor)
	if err != nil {
		return 0, err
	}

	article, err := model.New(author.ID, req.Title, req.Content, req.Hashtag, actor, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	created, err := s.articles.Create(ctx, article)
	if err != nil {
		return 0, err
	}

	return created.ID, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, actor string, articleID int64, req *model.UpdateArticleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	found, err := s.articles.UpdatePartial(ctx, articleID, req.ToPatch(), actor, time.Now().UTC())
	if err != nil {
		return err
	}
	if !found {
		// Best-effort update by design: a stale id is logged, not
		// surfaced. Callers observe success.
		log.Warn().
			Int64("article_id", articleID).
			Str("actor", actor).
			Msg("article update failed. article not found")
	}

	return nil
}

func (s *articleService) DeleteArticle(ctx context.Context, articleID int64) error {
	return s.articles.Delete(ctx, articleID)
}
