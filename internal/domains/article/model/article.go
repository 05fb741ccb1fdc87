package model

import (
	"strings"
	"time"

	"board-backend/internal/domains/audit"
)

// Length bounds enforced at construction time.
const (
	MaxTitleLength   = 255
	MaxContentLength = 10000
)

// Article is the root of the content aggregate. Title and content are
// never empty once persisted; the hashtag is optional and, when set,
// always carries its leading '#'.
type Article struct {
	ID       int64   `json:"id" db:"id"`
	AuthorID int64   `json:"author_id" db:"author_id"`
	Title    string  `json:"title" db:"title"`
	Content  string  `json:"content" db:"content"`
	Hashtag  *string `json:"hashtag" db:"hashtag"`

	audit.Fields
}

// New builds a transient Article owned by the given author. Blank
// title or content is a contract violation, never coerced.
func New(authorID int64, title, content string, hashtag *string, actor string, now time.Time) (*Article, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrBlankTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrBlankContent
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if len(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	return &Article{
		AuthorID: authorID,
		Title:    title,
		Content:  content,
		Hashtag:  hashtag,
		Fields:   audit.Stamp(actor, now),
	}, nil
}

// Equal reports identity equality. Transient articles (ID == 0) are
// never equal to anything, even with identical fields.
func (a *Article) Equal(other *Article) bool {
	if a == nil || other == nil {
		return false
	}
	return a.ID != 0 && a.ID == other.ID
}

// ArticleWithAuthor is an Article joined with its owner's public
// identity, the shape every read path returns.
type ArticleWithAuthor struct {
	Article
	AuthorLoginID  string `json:"author_login_id" db:"author_login_id"`
	AuthorNickname string `json:"author_nickname" db:"author_nickname"`
}

// ArticlePatch is a partial update. Nil fields are left untouched. A
// present-but-empty hashtag clears the stored value.
type ArticlePatch struct {
	Title   *string
	Content *string
	Hashtag *string
}

// Empty reports whether the patch carries no changes at all.
func (p ArticlePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Hashtag == nil
}
