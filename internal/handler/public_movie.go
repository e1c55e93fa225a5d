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

// PublicHandler serves the unauthenticated catalog: movie listings, movie
// detail by slug and the grouped showtime picker. These routes sit behind
// the Redis response cache.
type PublicHandler struct {
	Movies    *repository.MovieRepo
	Showtimes *repository.ShowtimeRepo
}

func NewPublicHandler(movies *repository.MovieRepo, showtimes *repository.ShowtimeRepo) *PublicHandler {
	if movies == nil || showtimes == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Movies: movies, Showtimes: showtimes}
}

// ListMovies handles GET /v1/movies. With ?showing=true only movies flagged
// is_showing are returned (the homepage listing); without it the full
// catalog comes back.
func (h *PublicHandler) ListMovies(c echo.Context) error {
	showingOnly := strings.EqualFold(c.QueryParam("showing"), "true")

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	items, err := h.Movies.List(ctx, showingOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetMovie handles GET /v1/movies/:slug.
func (h *PublicHandler) GetMovie(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	m, err := h.Movies.GetBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, m)
}

// showtimeGroup is one calendar day of the showtime picker.
type showtimeGroup struct {
	Date      string                 `json:"date"` // YYYY-MM-DD (UTC)
	Showtimes []model.ShowtimeDetail `json:"showtimes"`
}

// groupByDate buckets showtimes by their UTC calendar date, preserving the
// chronological order of the input.
func groupByDate(items []model.ShowtimeDetail) []showtimeGroup {
	groups := make([]showtimeGroup, 0)
	idx := make(map[string]int)
	for _, st := range items {
		date := st.StartsAt.UTC().Format("2006-01-02")
		i, ok := idx[date]
		if !ok {
			i = len(groups)
			idx[date] = i
			groups = append(groups, showtimeGroup{Date: date})
		}
		groups[i].Showtimes = append(groups[i].Showtimes, st)
	}
	return groups
}

// GetMovieShowtimes handles GET /v1/movies/:slug/showtimes: upcoming
// showtimes of the movie grouped by calendar date for the booking page.
func (h *PublicHandler) GetMovieShowtimes(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slug is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	m, err := h.Movies.GetBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	items, err := h.Showtimes.ListByMovie(ctx, m.ID, time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie": m,
		"dates": groupByDate(items),
	})
}

// SearchShowtimes handles GET /v1/search/showtimes with optional
// title, from and to query parameters (RFC 3339 bounds).
func (h *PublicHandler) SearchShowtimes(c echo.Context) error {
	title := strings.TrimSpace(c.QueryParam("title"))
	var from, to time.Time
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "from must be RFC 3339"})
		}
		from = t.UTC()
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be RFC 3339"})
		}
		to = t.UTC()
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	items, err := h.Showtimes.Search(ctx, title, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
