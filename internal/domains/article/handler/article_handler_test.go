package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-backend/internal/domains/article/model"
	"board-backend/internal/shared/middleware"
	"board-backend/internal/shared/pagination"
)

type fakeService struct {
	articles map[int64]*model.ArticleDetail
	updated  map[int64]*model.UpdateArticleRequest
}

func newFakeService() *fakeService {
	return &fakeService{
		articles: make(map[int64]*model.ArticleDetail),
		updated:  make(map[int64]*model.UpdateArticleRequest),
	}
}

func (s *fakeService) SearchArticles(_ context.Context, searchType model.SearchType, keyword string, page pagination.PageRequest) (pagination.Page[model.ArticleSummary], error) {
	if _, err := model.ResolveSearch(searchType, keyword); err != nil {
		return pagination.Page[model.ArticleSummary]{}, err
	}

	summaries := make([]model.ArticleSummary, 0, len(s.articles))
	for _, d := range s.articles {
		summaries = append(summaries, d.ArticleSummary)
	}
	return pagination.NewPage(summaries, page, int64(len(summaries))), nil
}

func (s *fakeService) GetArticleWithComments(_ context.Context, articleID int64) (*model.ArticleDetail, error) {
	d, ok := s.articles[articleID]
	if !ok {
		return nil, fmt.Errorf("%w - articleId: %d", model.ErrArticleNotFound, articleID)
	}
	return d, nil
}

func (s *fakeService) CreateArticle(_ context.Context, _ string, req *model.CreateArticleRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	id := int64(len(s.articles) + 1)
	s.articles[id] = &model.ArticleDetail{
		ArticleSummary: model.ArticleSummary{ID: id, Title: req.Title, Content: req.Content},
	}
	return id, nil
}

func (s *fakeService) UpdateArticle(_ context.Context, _ string, articleID int64, req *model.UpdateArticleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	s.updated[articleID] = req
	return nil
}

func (s *fakeService) DeleteArticle(_ context.Context, articleID int64) error {
	delete(s.articles, articleID)
	return nil
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewArticleHandler(svc)
	r := gin.New()
	r.GET("/articles", h.Search)
	r.GET("/articles/:id", h.Get)

	asActor := func(c *gin.Context) { c.Set(middleware.ActorKey, "uno") }
	r.POST("/articles", asActor, h.Create)
	r.PATCH("/articles/:id", asActor, h.Update)
	r.DELETE("/articles/:id", asActor, h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchHandler(t *testing.T) {
	svc := newFakeService()
	svc.articles[1] = &model.ArticleDetail{ArticleSummary: model.ArticleSummary{ID: 1, Title: "hello"}}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodGet, "/articles", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items         []model.ArticleSummary `json:"items"`
			TotalElements int64                  `json:"total_elements"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Data.TotalElements)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "hello", body.Data.Items[0].Title)
}

func TestSearchHandlerInvalidSearchType(t *testing.T) {
	r := setupRouter(newFakeService())

	w := doRequest(r, http.MethodGet, "/articles?search_type=bogus&keyword=java", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandlerInvalidSize(t *testing.T) {
	r := setupRouter(newFakeService())

	w := doRequest(r, http.MethodGet, "/articles?size=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHandlerNotFound(t *testing.T) {
	r := setupRouter(newFakeService())

	w := doRequest(r, http.MethodGet, "/articles/404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}

func TestGetHandlerBadID(t *testing.T) {
	r := setupRouter(newFakeService())

	w := doRequest(r, http.MethodGet, "/articles/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateHandler(t *testing.T) {
	svc := newFakeService()
	r := setupRouter(svc)

	w := doRequest(r, http.MethodPost, "/articles", `{"title":"t","content":"c"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, svc.articles, 1)
}

func TestCreateHandlerValidation(t *testing.T) {
	r := setupRouter(newFakeService())

	w := doRequest(r, http.MethodPost, "/articles", `{"title":"","content":"c"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestUpdateHandlerMissingArticleStillSucceeds(t *testing.T) {
	svc := newFakeService()
	r := setupRouter(svc)

	w := doRequest(r, http.MethodPatch, "/articles/404", `{"title":"new"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, svc.updated, int64(404))
}

func TestDeleteHandler(t *testing.T) {
	svc := newFakeService()
	svc.articles[1] = &model.ArticleDetail{ArticleSummary: model.ArticleSummary{ID: 1}}
	r := setupRouter(svc)

	w := doRequest(r, http.MethodDelete, "/articles/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.articles)
}
