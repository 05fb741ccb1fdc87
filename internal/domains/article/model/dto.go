package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	commentmodel "board-backend/internal/domains/comment/model"
)

// notBlank rejects present values that are empty after trimming, the
// same rule New applies at construction time. Nil pointers pass; an
// absent field is not a blank field.
func notBlank(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

// CreateArticleRequest - POST /v1/articles
// The owner is the authenticated acting identity, never a body field.
type CreateArticleRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Hashtag *string `json:"hashtag,omitempty"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&r.Content, validation.Required, validation.Length(1, MaxContentLength)),
		validation.Field(&r.Hashtag, validation.Length(0, MaxTitleLength)),
	)
}

// UpdateArticleRequest - PATCH /v1/articles/:id
// Absent fields are left untouched. Title and content, when present,
// must be non-blank; a present-but-empty hashtag clears it.
type UpdateArticleRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Hashtag *string `json:"hashtag,omitempty"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.By(notBlank), validation.Length(1, MaxTitleLength)),
		validation.Field(&r.Content, validation.By(notBlank), validation.Length(1, MaxContentLength)),
	)
}

// ToPatch converts the request into the repository patch form.
func (r UpdateArticleRequest) ToPatch() ArticlePatch {
	return ArticlePatch{
		Title:   r.Title,
		Content: r.Content,
		Hashtag: r.Hashtag,
	}
}

// ArticleSummary is the list/search row: the article's public fields,
// its author's display identity, and the audit fields.
type ArticleSummary struct {
	ID             int64     `json:"id"`
	AuthorID       int64     `json:"author_id"`
	AuthorLoginID  string    `json:"author_login_id"`
	AuthorNickname string    `json:"author_nickname"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Hashtag        *string   `json:"hashtag"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by"`
	ModifiedAt     time.Time `json:"modified_at"`
	ModifiedBy     string    `json:"modified_by"`
}

// ArticleDetail is the summary plus the article's comments in stable
// ascending creation order.
type ArticleDetail struct {
	ArticleSummary
	Comments []commentmodel.CommentResponse `json:"comments"`
}

// ToSummary converts a joined article row to its summary DTO.
func (a *ArticleWithAuthor) ToSummary() ArticleSummary {
	return ArticleSummary{
		ID:             a.ID,
		AuthorID:       a.AuthorID,
		AuthorLoginID:  a.AuthorLoginID,
		AuthorNickname: a.AuthorNickname,
		Title:          a.Title,
		Content:        a.Content,
		Hashtag:        a.Hashtag,
		CreatedAt:      a.CreatedAt,
		CreatedBy:      a.CreatedBy,
		ModifiedAt:     a.ModifiedAt,
		ModifiedBy:     a.ModifiedBy,
	}
}
