package model

import (
	"time"

	"board-backend/internal/domains/audit"
)

// Author is the identity record behind every article and comment.
// LoginID is the immutable external identity; Secret is an opaque
// bcrypt hash and must never appear in logs or responses.
type Author struct {
	ID       int64   `json:"id" db:"id"`
	LoginID  string  `json:"login_id" db:"login_id"`
	Secret   string  `json:"-" db:"secret"`
	Email    *string `json:"email" db:"email"`
	Nickname string  `json:"nickname" db:"nickname"`
	Memo     *string `json:"memo" db:"memo"`

	audit.Fields
}

// New builds a transient Author (no identifier yet). The secret must
// already be hashed by the caller.
func New(loginID, hashedSecret, nickname string, email, memo *string, actor string, now time.Time) *Author {
	return &Author{
		LoginID:  loginID,
		Secret:   hashedSecret,
		Email:    email,
		Nickname: nickname,
		Memo:     memo,
		Fields:   audit.Stamp(actor, now),
	}
}

// Equal reports identity equality. Transient authors (ID == 0) are
// never equal to anything, even with identical fields.
func (a *Author) Equal(other *Author) bool {
	if a == nil || other == nil {
		return false
	}
	return a.ID != 0 && a.ID == other.ID
}
