package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"board-backend/internal/config"
	infracache "board-backend/internal/infrastructure/cache"
	"board-backend/internal/infrastructure/database"
	"board-backend/pkg/cache"
	"board-backend/pkg/jwt"

	articlehandler "board-backend/internal/domains/article/handler"
	articlerepo "board-backend/internal/domains/article/repository"
	articleservice "board-backend/internal/domains/article/service"
	authorhandler "board-backend/internal/domains/author/handler"
	authorrepo "board-backend/internal/domains/author/repository"
	authorservice "board-backend/internal/domains/author/service"
	commenthandler "board-backend/internal/domains/comment/handler"
	commentrepo "board-backend/internal/domains/comment/repository"
	commentservice "board-backend/internal/domains/comment/service"
)

// Container is the root of the dependency graph: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthorRepo  authorrepo.Repository
	ArticleRepo articlerepo.Repository
	CommentRepo commentrepo.Repository

	AuthorService  authorservice.Service
	ArticleService articleservice.Service
	CommentService commentservice.Service

	AuthorHandler  *authorhandler.AuthorHandler
	ArticleHandler *articlehandler.ArticleHandler
	CommentHandler *commenthandler.CommentHandler

	redisCache *infracache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.redisCache = redisCache
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Repositories
	c.AuthorRepo = authorrepo.NewPostgresRepository(db.Pool)
	c.ArticleRepo = articlerepo.NewPostgresRepository(db.Pool, c.Cache)
	c.CommentRepo = commentrepo.NewPostgresRepository(db.Pool)

	// Services
	c.AuthorService = authorservice.NewAuthorService(c.AuthorRepo, c.JWTManager)
	c.ArticleService = articleservice.NewArticleService(c.ArticleRepo, c.AuthorRepo, c.CommentRepo)
	c.CommentService = commentservice.NewCommentService(c.CommentRepo, c.ArticleRepo, c.AuthorRepo)

	// Handlers
	c.AuthorHandler = authorhandler.NewAuthorHandler(c.AuthorService)
	c.ArticleHandler = articlehandler.NewArticleHandler(c.ArticleService)
	c.CommentHandler = commenthandler.NewCommentHandler(c.CommentService)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redisCache != nil {
		c.redisCache.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
