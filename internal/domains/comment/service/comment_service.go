package service

import (
	"context"
	"fmt"
	"time"

	articlemodel "board-backend/internal/domains/article/model"
	articlerepo "board-backend/internal/domains/article/repository"
	authorrepo "board-backend/internal/domains/author/repository"
	"board-backend/internal/domains/comment/model"
	"board-backend/internal/domains/comment/repository"
)

type commentService struct {
	comments repository.Repository
	articles articlerepo.Repository
	authors  authorrepo.Repository
}

func NewCommentService(comments repository.Repository, articles articlerepo.Repository, authors authorrepo.Repository) Service {
	return &commentService{
		comments: comments,
		articles: articles,
		authors:  authors,
	}
}

func (s *commentService) SearchCommentsByArticle(ctx context.Context, articleID int64) ([]model.CommentResponse, error) {
	comments, err := s.comments.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.CommentResponse, len(comments))
	for i := range comments {
		responses[i] = comments[i].ToResponse()
	}
	return responses, nil
}

func (s *commentService) CreateComment(ctx context.Context, actor string, articleID int64, req *model.CreateCommentRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	exists, err := s.articles.ExistsByID(ctx, articleID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("%w - articleId: %d", articlemodel.ErrArticleNotFound, articleID)
	}

	// The commenter is whoever authenticated, resolved by login id.
	author, err := s.authors.GetByLoginID(ctx, actor)
	if err != nil {
		return 0, err
	}

	comment, err := model.New(articleID, author.ID, req.Content, actor, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return 0, err
	}

	return created.ID, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	return s.comments.Delete(ctx, commentID)
}
