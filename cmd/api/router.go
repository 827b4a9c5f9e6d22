package main

import (
	"net/http"

	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authRequired := middleware.Auth(c.JWTManager)
	idGuard := middleware.UUIDParam("id")

	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", idGuard, c.CategoryHandler.GetByID)
		categories.POST("", authRequired, c.CategoryHandler.Create)
		categories.PUT("/:id", authRequired, idGuard, c.CategoryHandler.Rename)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authRequired := middleware.Auth(c.JWTManager)
	idGuard := middleware.UUIDParam("id")

	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", idGuard, c.BookHandler.GetByID)
		books.POST("", authRequired, c.BookHandler.Create)
		books.PUT("/:id", authRequired, idGuard, c.BookHandler.Update)
		books.DELETE("/:id", authRequired, idGuard, c.BookHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = err.Error()
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = err.Error()
		}

		status := http.StatusOK
		if dbStatus != "ok" || cacheStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"name":     c.Config.App.Name,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
