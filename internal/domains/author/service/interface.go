package service

import (
	"context"

	"board-backend/internal/domains/author/model"
)

// Service holds the author business logic: registration, login glue,
// and profile management. Credential hashing happens here; the rest of
// the system only ever sees the resolved acting identity.
type Service interface {
	// Register creates a new author. The password is bcrypt-hashed
	// before it reaches the repository.
	// Errors: model.ErrDuplicateLoginID, validation errors.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Author, error)

	// Login verifies credentials and issues an access token whose
	// subject is the login id.
	// Errors: model.ErrInvalidCredentials.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// GetProfile returns the author identified by login id.
	// Errors: model.ErrAuthorNotFound.
	GetProfile(ctx context.Context, loginID string) (*model.Author, error)

	// UpdateProfile applies the present fields of req to the actor's
	// own profile and restamps the modification audit pair.
	// Errors: model.ErrAuthorNotFound.
	UpdateProfile(ctx context.Context, actor string, req *model.UpdateProfileRequest) (*model.Author, error)
}
