package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farhanhr/cinema-booking-api/internal/model"
	"github.com/farhanhr/cinema-booking-api/internal/repository"
)

// CreateTheater handles POST /v1/admin/theaters. Theaters are reference
// data seeded once and reused by every showtime.
func (h *AdminHandler) CreateTheater(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		Capacity uint32 `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || body.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and positive capacity required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	t := model.Theater{Name: body.Name, Capacity: body.Capacity}
	if err := h.Theaters.Create(ctx, &t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create theater"})
	}
	return c.JSON(http.StatusCreated, t)
}

// ListTheaters handles GET /v1/admin/theaters.
func (h *AdminHandler) ListTheaters(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	items, err := h.Theaters.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateShowtime handles POST /v1/admin/showtimes. Both the movie and the
// theater must exist; a dangling reference is a 404, not a 500 from the
// foreign key.
func (h *AdminHandler) CreateShowtime(c echo.Context) error {
	var body struct {
		MovieID   uint64 `json:"movie_id"`
		TheaterID uint64 `json:"theater_id"`
		StartsAt  string `json:"starts_at"` // RFC 3339
		Price     int64  `json:"price"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.MovieID == 0 || body.TheaterID == 0 || body.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id, theater_id and positive price required"})
	}
	startsAt, err := time.Parse(time.RFC3339, body.StartsAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "starts_at must be RFC 3339"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	if _, err := h.Movies.GetByID(ctx, body.MovieID); err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if _, err := h.Theaters.GetByID(ctx, body.TheaterID); err != nil {
		if err == repository.ErrTheaterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	s := model.Showtime{
		MovieID:   body.MovieID,
		TheaterID: body.TheaterID,
		StartsAt:  startsAt.UTC(),
		Price:     body.Price,
	}
	if err := h.Showtimes.Create(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create showtime"})
	}
	return c.JSON(http.StatusCreated, s)
}

// DeleteShowtime handles DELETE /v1/admin/showtimes/:id.
func (h *AdminHandler) DeleteShowtime(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "showtime id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	if err := h.Showtimes.Delete(ctx, id); err != nil {
		if err == repository.ErrShowtimeNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "showtime deleted"})
}
