package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articlemodel "board-backend/internal/domains/article/model"
	authormodel "board-backend/internal/domains/author/model"
	"board-backend/internal/domains/comment/model"
	"board-backend/internal/shared/pagination"
)

type stubAuthorRepo struct {
	authors map[int64]*authormodel.Author
}

func (r *stubAuthorRepo) Create(_ context.Context, _ *authormodel.Author) (*authormodel.Author, error) {
	panic("not used")
}

func (r *stubAuthorRepo) GetByID(_ context.Context, id int64) (*authormodel.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, authormodel.ErrAuthorNotFound
	}
	return a, nil
}

func (r *stubAuthorRepo) GetByLoginID(_ context.Context, loginID string) (*authormodel.Author, error) {
	for _, a := range r.authors {
		if a.LoginID == loginID {
			return a, nil
		}
	}
	return nil, authormodel.ErrAuthorNotFound
}

func (r *stubAuthorRepo) UpdateProfile(_ context.Context, _ *authormodel.Author) error {
	panic("not used")
}

func (r *stubAuthorRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}

type stubArticleRepo struct {
	existing map[int64]bool
}

func (r *stubArticleRepo) Create(_ context.Context, _ *articlemodel.Article) (*articlemodel.Article, error) {
	panic("not used")
}

func (r *stubArticleRepo) GetByID(_ context.Context, _ int64) (*articlemodel.ArticleWithAuthor, error) {
	panic("not used")
}

func (r *stubArticleRepo) Search(_ context.Context, _ articlemodel.SearchQuery, _ pagination.PageRequest) ([]articlemodel.ArticleWithAuthor, int64, error) {
	panic("not used")
}

func (r *stubArticleRepo) UpdatePartial(_ context.Context, _ int64, _ articlemodel.ArticlePatch, _ string, _ time.Time) (bool, error) {
	panic("not used")
}

func (r *stubArticleRepo) Delete(_ context.Context, _ int64) error {
	panic("not used")
}

func (r *stubArticleRepo) Count(_ context.Context) (int64, error) {
	panic("not used")
}

func (r *stubArticleRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	return r.existing[id], nil
}

type stubCommentRepo struct {
	comments map[int64]*model.Comment
	authors  *stubAuthorRepo
	nextID   int64
}

func (r *stubCommentRepo) Create(_ context.Context, comment *model.Comment) (*model.Comment, error) {
	r.nextID++
	created := *comment
	created.ID = r.nextID
	r.comments[created.ID] = &created
	return &created, nil
}

func (r *stubCommentRepo) ListByArticle(_ context.Context, articleID int64) ([]model.CommentWithAuthor, error) {
	rows := make([]model.CommentWithAuthor, 0)
	for _, c := range r.comments {
		if c.ArticleID != articleID {
			continue
		}
		row := model.CommentWithAuthor{Comment: *c}
		if a, ok := r.authors.authors[c.AuthorID]; ok {
			row.AuthorLoginID = a.LoginID
			row.AuthorNickname = a.Nickname
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id int64) error {
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

func newTestService() (Service, *stubCommentRepo, *stubArticleRepo, *stubAuthorRepo) {
	authors := &stubAuthorRepo{authors: map[int64]*authormodel.Author{
		1: {ID: 1, LoginID: "uno", Nickname: "Uno"},
	}}
	articles := &stubArticleRepo{existing: map[int64]bool{10: true}}
	comments := &stubCommentRepo{comments: make(map[int64]*model.Comment), authors: authors}
	return NewCommentService(comments, articles, authors), comments, articles, authors
}

func TestCreateComment(t *testing.T) {
	svc, comments, _, _ := newTestService()

	id, err := svc.CreateComment(context.Background(), "uno", 10, &model.CreateCommentRequest{
		Content: "a comment",
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	stored := comments.comments[id]
	require.NotNil(t, stored)
	assert.Equal(t, int64(10), stored.ArticleID)
	assert.Equal(t, int64(1), stored.AuthorID)
	assert.Equal(t, "uno", stored.CreatedBy)
	assert.Equal(t, "uno", stored.ModifiedBy)
}

func TestCreateCommentUnknownArticle(t *testing.T) {
	svc, comments, _, _ := newTestService()

	_, err := svc.CreateComment(context.Background(), "uno", 404, &model.CreateCommentRequest{
		Content: "a comment",
	})
	assert.ErrorIs(t, err, articlemodel.ErrArticleNotFound)
	assert.Contains(t, err.Error(), "404")
	assert.Empty(t, comments.comments)
}

func TestCreateCommentUnknownActor(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateComment(context.Background(), "ghost", 10, &model.CreateCommentRequest{
		Content: "a comment",
	})
	assert.ErrorIs(t, err, authormodel.ErrAuthorNotFound)
}

func TestCreateCommentBlankContent(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateComment(context.Background(), "uno", 10, &model.CreateCommentRequest{
		Content: "",
	})
	assert.Error(t, err)
}

func TestSearchCommentsUnknownArticleIsEmpty(t *testing.T) {
	svc, _, _, _ := newTestService()

	responses, err := svc.SearchCommentsByArticle(context.Background(), 404)
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestSearchCommentsInCreationOrder(t *testing.T) {
	svc, _, _, _ := newTestService()

	for _, text := range []string{"first", "second"} {
		_, err := svc.CreateComment(context.Background(), "uno", 10, &model.CreateCommentRequest{
			Content: text,
		})
		require.NoError(t, err)
	}

	responses, err := svc.SearchCommentsByArticle(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "first", responses[0].Content)
	assert.Equal(t, "second", responses[1].Content)
	assert.Equal(t, "uno", responses[0].AuthorLoginID)
	assert.Equal(t, "Uno", responses[0].AuthorNickname)
}

func TestDeleteCommentIdempotent(t *testing.T) {
	svc, comments, _, _ := newTestService()

	id, err := svc.CreateComment(context.Background(), "uno", 10, &model.CreateCommentRequest{
		Content: "a comment",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(context.Background(), id))
	assert.Empty(t, comments.comments)

	assert.NoError(t, svc.DeleteComment(context.Background(), id))
}
