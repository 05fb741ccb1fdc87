package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCommentRequest - POST /v1/articles/:id/comments
type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content, validation.Required, validation.Length(1, MaxContentLength)),
	)
}

// CommentResponse mirrors the comment's public fields plus audit data.
type CommentResponse struct {
	ID             int64     `json:"id"`
	ArticleID      int64     `json:"article_id"`
	AuthorID       int64     `json:"author_id"`
	AuthorLoginID  string    `json:"author_login_id"`
	AuthorNickname string    `json:"author_nickname"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by"`
	ModifiedAt     time.Time `json:"modified_at"`
	ModifiedBy     string    `json:"modified_by"`
}

// ToResponse converts a joined comment row to its response DTO.
func (c *CommentWithAuthor) ToResponse() CommentResponse {
	return CommentResponse{
		ID:             c.ID,
		ArticleID:      c.ArticleID,
		AuthorID:       c.AuthorID,
		AuthorLoginID:  c.AuthorLoginID,
		AuthorNickname: c.AuthorNickname,
		Content:        c.Content,
		CreatedAt:      c.CreatedAt,
		CreatedBy:      c.CreatedBy,
		ModifiedAt:     c.ModifiedAt,
		ModifiedBy:     c.ModifiedBy,
	}
}
