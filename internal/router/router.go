// Package router wires HTTP routes to handlers, split by audience: public
// catalog, authenticated customers, and the admin dashboard.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/farhanhr/cinema-booking-api/internal/handler"
	"github.com/farhanhr/cinema-booking-api/internal/middleware"
)

// RegisterRoutes registers routes that need no authentication or handler
// state. Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers session endpoints. Register, login, refresh and
// logout live under /v1/auth without middleware; /v1/me requires a valid
// access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout validates its own credentials (refresh token in the body or a
	// bearer token) so it is reachable even with an expired access token.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}
