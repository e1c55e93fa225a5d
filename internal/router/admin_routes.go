package router

import (
	"github.com/labstack/echo/v4"

	"github.com/farhanhr/cinema-booking-api/internal/handler"
	"github.com/farhanhr/cinema-booking-api/internal/middleware"
)

// RegisterAdmin registers dashboard endpoints under /v1/admin. Every route
// requires a valid JWT carrying role=admin; anything else is rejected by
// the middleware chain with 401 or 403 before the handler runs.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("admin"),
	)

	// ---- Movies ----
	g.GET("/movies", a.ListMovies)
	g.POST("/movies", a.CreateMovie)
	g.PUT("/movies/:id", a.UpdateMovie)
	g.PATCH("/movies/:id", a.UpdateMovie) // same full-form semantics
	g.DELETE("/movies/:id", a.DeleteMovie)

	// ---- Scheduling ----
	g.POST("/theaters", a.CreateTheater)
	g.GET("/theaters", a.ListTheaters)
	g.POST("/showtimes", a.CreateShowtime)
	g.DELETE("/showtimes/:id", a.DeleteShowtime)
}
