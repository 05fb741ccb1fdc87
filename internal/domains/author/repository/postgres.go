package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"board-backend/internal/domains/author/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, login_id, secret, email, nickname, memo, created_at, created_by, modified_at, modified_by`

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.LoginID,
		&a.Secret,
		&a.Email,
		&a.Nickname,
		&a.Memo,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.ModifiedAt,
		&a.ModifiedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (login_id, secret, email, nickname, memo, created_at, created_by, modified_at, modified_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(
		ctx,
		query,
		a.LoginID,
		a.Secret,
		a.Email,
		a.Nickname,
		a.Memo,
		a.CreatedAt,
		a.CreatedBy,
		a.ModifiedAt,
		a.ModifiedBy,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, model.ErrDuplicateLoginID
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) GetByLoginID(ctx context.Context, loginID string) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE login_id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, loginID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by login id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, a *model.Author) error {
	query := `
        UPDATE authors
        SET email = $1, nickname = $2, memo = $3, modified_at = $4, modified_by = $5
        WHERE id = $6
    `

	cmdTag, err := r.pool.Exec(ctx, query, a.Email, a.Nickname, a.Memo, a.ModifiedAt, a.ModifiedBy, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update author profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}
