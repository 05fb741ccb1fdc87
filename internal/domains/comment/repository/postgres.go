package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"board-backend/internal/domains/comment/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	query := `
        INSERT INTO comments (article_id, author_id, content, created_at, created_by, modified_at, modified_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, article_id, author_id, content, created_at, created_by, modified_at, modified_by
    `

	var created model.Comment
	err := r.pool.QueryRow(
		ctx,
		query,
		c.ArticleID,
		c.AuthorID,
		c.Content,
		c.CreatedAt,
		c.CreatedBy,
		c.ModifiedAt,
		c.ModifiedBy,
	).Scan(
		&created.ID,
		&created.ArticleID,
		&created.AuthorID,
		&created.Content,
		&created.CreatedAt,
		&created.CreatedBy,
		&created.ModifiedAt,
		&created.ModifiedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) ListByArticle(ctx context.Context, articleID int64) ([]model.CommentWithAuthor, error) {
	// Ascending id keeps the stable creation-sequence order.
	query := `
        SELECT c.id, c.article_id, c.author_id, c.content,
               c.created_at, c.created_by, c.modified_at, c.modified_by,
               u.login_id, u.nickname
        FROM comments c
        JOIN authors u ON u.id = c.author_id
        WHERE c.article_id = $1
        ORDER BY c.id ASC
    `

	rows, err := r.pool.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []model.CommentWithAuthor{}
	for rows.Next() {
		var c model.CommentWithAuthor
		err := rows.Scan(
			&c.ID,
			&c.ArticleID,
			&c.AuthorID,
			&c.Content,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.ModifiedAt,
			&c.ModifiedBy,
			&c.AuthorLoginID,
			&c.AuthorNickname,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
