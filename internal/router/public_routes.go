package router

import (
	"github.com/labstack/echo/v4"

	"github.com/farhanhr/cinema-booking-api/internal/handler"
)

// RegisterPublic registers the unauthenticated catalog endpoints. The cache
// middleware (a no-op when Redis is absent) fronts all of them: the same
// listing is served to every visitor, so these are the routes worth caching.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	g.GET("/movies", p.ListMovies)
	g.GET("/movies/:slug", p.GetMovie)
	g.GET("/movies/:slug/showtimes", p.GetMovieShowtimes)
	g.GET("/search/showtimes", p.SearchShowtimes)
}
