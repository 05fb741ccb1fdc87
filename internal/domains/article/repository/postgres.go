package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"board-backend/internal/domains/article/model"
	"board-backend/internal/shared/pagination"
	"board-backend/pkg/cache"
	"board-backend/pkg/database"
)

// postgresRepository implements Repository on pgxpool with a redis
// read cache for article details.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	articleCacheKeyPrefix = "article:"
	cacheTTL              = 15 * time.Minute
)

const articleJoinedColumns = `
        a.id, a.author_id, a.title, a.content, a.hashtag,
        a.created_at, a.created_by, a.modified_at, a.modified_by,
        u.login_id, u.nickname`

func scanArticleWithAuthor(row pgx.Row) (*model.ArticleWithAuthor, error) {
	var a model.ArticleWithAuthor
	err := row.Scan(
		&a.ID,
		&a.AuthorID,
		&a.Title,
		&a.Content,
		&a.Hashtag,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.ModifiedAt,
		&a.ModifiedBy,
		&a.AuthorLoginID,
		&a.AuthorNickname,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// searchCondition translates the resolved query into a WHERE clause
// and its arguments. Argument numbering starts at startArg.
func searchCondition(q model.SearchQuery, startArg int) (string, []interface{}) {
	switch q.Field {
	case model.FieldNone:
		return "", nil
	case model.FieldTitle:
		return fmt.Sprintf("a.title ILIKE $%d", startArg), []interface{}{"%" + q.Keyword + "%"}
	case model.FieldContent:
		return fmt.Sprintf("a.content ILIKE $%d", startArg), []interface{}{"%" + q.Keyword + "%"}
	case model.FieldAuthorLoginID:
		return fmt.Sprintf("u.login_id ILIKE $%d", startArg), []interface{}{"%" + q.Keyword + "%"}
	case model.FieldAuthorNickname:
		return fmt.Sprintf("u.nickname ILIKE $%d", startArg), []interface{}{"%" + q.Keyword + "%"}
	case model.FieldHashtag:
		return fmt.Sprintf("a.hashtag = $%d", startArg), []interface{}{q.Keyword}
	default:
		// ResolveSearch owns the dispatch; anything else is a bug.
		panic(fmt.Sprintf("unknown search field: %d", q.Field))
	}
}

// orderClause maps the sort key to a whitelisted ORDER BY clause.
// Default is id descending (newest first); the order is deterministic
// because id is unique.
func orderClause(sort string) string {
	switch sort {
	case "", "id", "id,desc":
		return "a.id DESC"
	case "id,asc":
		return "a.id ASC"
	case "created_at", "created_at,desc":
		return "a.created_at DESC, a.id DESC"
	case "created_at,asc":
		return "a.created_at ASC, a.id ASC"
	default:
		return "a.id DESC"
	}
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	query := `
        INSERT INTO articles (author_id, title, content, hashtag, created_at, created_by, modified_at, modified_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, author_id, title, content, hashtag, created_at, created_by, modified_at, modified_by
    `

	var created model.Article
	err := r.pool.QueryRow(
		ctx,
		query,
		a.AuthorID,
		a.Title,
		a.Content,
		a.Hashtag,
		a.CreatedAt,
		a.CreatedBy,
		a.ModifiedAt,
		a.ModifiedBy,
	).Scan(
		&created.ID,
		&created.AuthorID,
		&created.Title,
		&created.Content,
		&created.Hashtag,
		&created.CreatedAt,
		&created.CreatedBy,
		&created.ModifiedAt,
		&created.ModifiedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.ArticleWithAuthor, error) {
	cacheKey := fmt.Sprintf("%s%d", articleCacheKeyPrefix, id)

	var cached model.ArticleWithAuthor
	if hit, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	query := `
        SELECT ` + articleJoinedColumns + `
        FROM articles a
        JOIN authors u ON u.id = a.author_id
        WHERE a.id = $1
    `

	a, err := scanArticleWithAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w - articleId: %d", model.ErrArticleNotFound, id)
		}
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return a, nil
}

func (r *postgresRepository) Search(ctx context.Context, q model.SearchQuery, page pagination.PageRequest) ([]model.ArticleWithAuthor, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT ` + articleJoinedColumns + `
        FROM articles a
        JOIN authors u ON u.id = a.author_id
    `)

	cond, args := searchCondition(q, 1)
	if cond != "" {
		queryBuilder.WriteString(" WHERE " + cond)
	}

	queryBuilder.WriteString(" ORDER BY " + orderClause(page.Sort))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, page.Size, page.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search articles: %w", err)
	}
	defer rows.Close()

	var articles []model.ArticleWithAuthor
	for rows.Next() {
		a, err := scanArticleWithAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating articles: %w", err)
	}

	countQuery := `
        SELECT COUNT(*)
        FROM articles a
        JOIN authors u ON u.id = a.author_id
    `
	countCond, countArgs := searchCondition(q, 1)
	if countCond != "" {
		countQuery += " WHERE " + countCond
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	return articles, total, nil
}

func (r *postgresRepository) UpdatePartial(ctx context.Context, id int64, patch model.ArticlePatch, actor string, now time.Time) (bool, error) {
	// An empty patch still moves the modification pair; the statement
	// below always sets modified_at/modified_by.
	var sets []string
	var args []interface{}
	arg := 1

	if patch.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", arg))
		args = append(args, *patch.Title)
		arg++
	}
	if patch.Content != nil {
		sets = append(sets, fmt.Sprintf("content = $%d", arg))
		args = append(args, *patch.Content)
		arg++
	}
	if patch.Hashtag != nil {
		if *patch.Hashtag == "" {
			sets = append(sets, "hashtag = NULL")
		} else {
			sets = append(sets, fmt.Sprintf("hashtag = $%d", arg))
			args = append(args, *patch.Hashtag)
			arg++
		}
	}

	sets = append(sets, fmt.Sprintf("modified_at = $%d", arg))
	args = append(args, now)
	arg++
	sets = append(sets, fmt.Sprintf("modified_by = $%d", arg))
	args = append(args, actor)
	arg++

	query := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d", strings.Join(sets, ", "), arg)
	args = append(args, id)

	cmdTag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return false, nil
	}

	r.cache.Delete(ctx, fmt.Sprintf("%s%d", articleCacheKeyPrefix, id))
	return true, nil
}

// Delete cascades explicitly: comments go first, then the article,
// inside one transaction. No reliance on FK-level cascade.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete article comments: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete article: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.cache.Delete(ctx, fmt.Sprintf("%s%d", articleCacheKeyPrefix, id))
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}
	return exists, nil
}
