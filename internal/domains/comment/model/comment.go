package model

import (
	"strings"
	"time"

	"board-backend/internal/domains/audit"
)

const MaxContentLength = 500

// Comment belongs to exactly one article and one author. Comments of
// an article are retrieved in ascending id order, which follows the
// creation sequence.
type Comment struct {
	ID        int64  `json:"id" db:"id"`
	ArticleID int64  `json:"article_id" db:"article_id"`
	AuthorID  int64  `json:"author_id" db:"author_id"`
	Content   string `json:"content" db:"content"`

	audit.Fields
}

// New builds a transient Comment. Blank content is a contract
// violation.
func New(articleID, authorID int64, content, actor string, now time.Time) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrBlankContent
	}
	if len(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	return &Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Content:   content,
		Fields:    audit.Stamp(actor, now),
	}, nil
}

// Equal reports identity equality. Transient comments (ID == 0) are
// never equal to anything, even with identical fields.
func (c *Comment) Equal(other *Comment) bool {
	if c == nil || other == nil {
		return false
	}
	return c.ID != 0 && c.ID == other.ID
}

// CommentWithAuthor is a Comment joined with its author's public
// identity.
type CommentWithAuthor struct {
	Comment
	AuthorLoginID  string `json:"author_login_id" db:"author_login_id"`
	AuthorNickname string `json:"author_nickname" db:"author_nickname"`
}
