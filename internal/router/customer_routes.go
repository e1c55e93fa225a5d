package router

import (
	"github.com/labstack/echo/v4"

	"github.com/farhanhr/cinema-booking-api/internal/handler"
	"github.com/farhanhr/cinema-booking-api/internal/middleware"
)

// RegisterCustomer registers booking endpoints. They require a valid access
// token but no particular role: admins can book tickets too.
func RegisterCustomer(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	g.POST("/bookings", b.Create)
	g.GET("/my-bookings", b.ListMine)
}
