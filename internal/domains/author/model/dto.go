package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterRequest - POST /v1/auth/register
type RegisterRequest struct {
	LoginID  string  `json:"login_id"`
	Password string  `json:"password"`
	Nickname string  `json:"nickname"`
	Email    *string `json:"email,omitempty"`
	Memo     *string `json:"memo,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LoginID, validation.Required, validation.Length(3, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.Nickname, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, is.Email),
	)
}

// LoginRequest - POST /v1/auth/login
type LoginRequest struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LoginID, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// UpdateProfileRequest - PATCH /v1/authors/me
// Only present fields are applied; the login id is immutable.
type UpdateProfileRequest struct {
	Nickname *string `json:"nickname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Memo     *string `json:"memo,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nickname, validation.Length(1, 100)),
		validation.Field(&r.Email, is.Email),
	)
}

// AuthorResponse mirrors the author's public fields plus audit data.
// The secret is never included.
type AuthorResponse struct {
	ID         int64     `json:"id"`
	LoginID    string    `json:"login_id"`
	Email      *string   `json:"email,omitempty"`
	Nickname   string    `json:"nickname"`
	Memo       *string   `json:"memo,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
	ModifiedAt time.Time `json:"modified_at"`
	ModifiedBy string    `json:"modified_by"`
}

// LoginResponse - token plus the authenticated profile.
type LoginResponse struct {
	Token  string         `json:"token"`
	Author AuthorResponse `json:"author"`
}

// ToResponse converts an Author entity to its response DTO.
func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:         a.ID,
		LoginID:    a.LoginID,
		Email:      a.Email,
		Nickname:   a.Nickname,
		Memo:       a.Memo,
		CreatedAt:  a.CreatedAt,
		CreatedBy:  a.CreatedBy,
		ModifiedAt: a.ModifiedAt,
		ModifiedBy: a.ModifiedBy,
	}
}
