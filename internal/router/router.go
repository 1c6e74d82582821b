package router // package router wires HTTP routes to their handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/product-inventory/internal/config"
	"github.com/iliyamo/product-inventory/internal/handler"
	"github.com/iliyamo/product-inventory/internal/middleware"
)

// Register mounts every route on the provided Echo instance. Auth routes
// are open; everything under /api/product runs behind the token guard.
// The Redis-backed rate limiter wraps both groups and degrades to a
// pass-through when rdb is nil.
func Register(e *echo.Echo, a *handler.AuthHandler, p *handler.ProductHandler, jwtSecret string, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	auth := e.Group("/api/auth", limiter)
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)

	// Protected group: the guard resolves the owner id before any product
	// operation runs. Route names match the original public interface.
	product := e.Group("/api/product", middleware.Authenticate(jwtSecret), limiter)
	product.GET("/getProducts", p.List)
	product.POST("/addProducts", p.Add)
	product.PUT("/updateproduct", p.Update)
	product.DELETE("/deleteProduct", p.Delete)
	product.DELETE("/deleteAllProducts", p.DeleteAll)
	product.DELETE("/deleteUser", p.DeleteUser)
}
