// Package router registers the HTTP routes of the API server.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ositola/schedule-planner/internal/config"
	"github.com/ositola/schedule-planner/internal/handler"
	"github.com/ositola/schedule-planner/internal/middleware"
)

// Handlers bundles the handler sets wired by the server main.
type Handlers struct {
	Auth      *handler.AuthHandler
	Schedules *handler.ScheduleHandler
	Favorites *handler.FavoriteHandler
}

// Register wires all routes.  Schedule reads are public and sit behind the
// rate limiter and the response cache; favorites and /v1/me require a
// valid access token.  rdb may be nil, in which case the cache and the
// limiter become no-ops.
func Register(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	limiter := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	// Public reads over the generated result set.
	pub := e.Group("/v1", limiter)
	pub.GET("/schedules", h.Schedules.List, cache)
	pub.GET("/schedules/:id", h.Schedules.Get, cache)

	// Account and token endpoints.
	auth := e.Group("/v1/auth", limiter)
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	// Endpoints requiring an authenticated caller.
	priv := e.Group("/v1", limiter, middleware.JWTAuth(jwtSecret))
	priv.GET("/me", h.Auth.Me)
	priv.POST("/favorites", h.Favorites.Create)
	priv.GET("/favorites", h.Favorites.List)
	priv.DELETE("/favorites/:id", h.Favorites.Delete)
}
