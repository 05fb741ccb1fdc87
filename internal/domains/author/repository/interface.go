package repository

import (
	"context"

	"board-backend/internal/domains/author/model"
)

// Repository defines data access for authors.
type Repository interface {
	// Create inserts a new author; the returned entity carries the
	// assigned identifier.
	// Errors: model.ErrDuplicateLoginID on a taken login id.
	Create(ctx context.Context, author *model.Author) (*model.Author, error)

	// GetByID retrieves an author by identifier.
	// Errors: model.ErrAuthorNotFound.
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// GetByLoginID retrieves an author by login id.
	// Errors: model.ErrAuthorNotFound.
	GetByLoginID(ctx context.Context, loginID string) (*model.Author, error)

	// UpdateProfile persists the mutable profile fields (nickname,
	// email, memo) and the modification audit pair.
	// Errors: model.ErrAuthorNotFound.
	UpdateProfile(ctx context.Context, author *model.Author) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
