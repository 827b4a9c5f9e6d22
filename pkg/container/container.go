package container

import (
	"context"
	"fmt"
	"time"

	"bookstore-catalog/internal/config"
	infracache "bookstore-catalog/internal/infrastructure/cache"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/pkg/cache"
	"bookstore-catalog/pkg/jwt"
	"bookstore-catalog/pkg/logger"

	bookhandler "bookstore-catalog/internal/domains/book/handler"
	bookrepo "bookstore-catalog/internal/domains/book/repository"
	bookservice "bookstore-catalog/internal/domains/book/service"
	categoryhandler "bookstore-catalog/internal/domains/category/handler"
	categoryrepo "bookstore-catalog/internal/domains/category/repository"
	categoryservice "bookstore-catalog/internal/domains/category/service"
	reviewrepo "bookstore-catalog/internal/domains/review/repository"
	userhandler "bookstore-catalog/internal/domains/user/handler"
	userrepo "bookstore-catalog/internal/domains/user/repository"
	userservice "bookstore-catalog/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything that used to be
// framework-level global state (db handle, route collaborators) is built here
// once and passed down explicitly.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	BookRepo     bookrepo.Repository
	CategoryRepo categoryrepo.Repository
	ReviewRepo   reviewrepo.Repository
	UserRepo     userrepo.Repository

	BookService     bookservice.Service
	CategoryService categoryservice.Service
	UserService     userservice.Service

	BookHandler     *bookhandler.Handler
	CategoryHandler *categoryhandler.Handler
	UserHandler     *userhandler.Handler

	redis *infracache.RedisCache
}

// NewContainer initializes the whole graph in dependency order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.redis = infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.redis.Ping(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = c.redis

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	pool := c.DB.Pool
	c.BookRepo = bookrepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryrepo.NewPostgresRepository(pool)
	c.ReviewRepo = reviewrepo.NewPostgresRepository(pool)
	c.UserRepo = userrepo.NewPostgresRepository(pool)

	c.BookService = bookservice.NewBookService(c.BookRepo, c.CategoryRepo, c.ReviewRepo)
	c.CategoryService = categoryservice.NewCategoryService(c.CategoryRepo)
	c.UserService = userservice.NewUserService(c.UserRepo, c.JWTManager)

	c.BookHandler = bookhandler.NewHandler(c.BookService, c.Cache)
	c.CategoryHandler = categoryhandler.NewHandler(c.CategoryService)
	c.UserHandler = userhandler.NewHandler(c.UserService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
