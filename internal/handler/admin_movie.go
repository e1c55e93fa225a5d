package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farhanhr/cinema-booking-api/internal/model"
	"github.com/farhanhr/cinema-booking-api/internal/repository"
	"github.com/farhanhr/cinema-booking-api/internal/utils"
)

// AdminHandler bundles repositories for the admin dashboard: movie CRUD and
// scheduling. Routes using it are wrapped in JWTAuth + RequireRole("admin"),
// so handlers can assume an authenticated admin.
type AdminHandler struct {
	Movies    *repository.MovieRepo
	Theaters  *repository.TheaterRepo
	Showtimes *repository.ShowtimeRepo
}

func NewAdminHandler(movies *repository.MovieRepo, theaters *repository.TheaterRepo, showtimes *repository.ShowtimeRepo) *AdminHandler {
	if movies == nil || theaters == nil || showtimes == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Movies: movies, Theaters: theaters, Showtimes: showtimes}
}

// movieForm is the admin movie create/update payload. Validation mirrors the
// dashboard form: a poster must be a well-formed URL, the synopsis carries at
// least ten characters and the duration is positive.
type movieForm struct {
	Title       string `json:"title" validate:"required"`
	PosterURL   string `json:"poster_url" validate:"required,url"`
	Director    string `json:"director" validate:"required"`
	Cast        string `json:"cast" validate:"required"`
	Synopsis    string `json:"synopsis" validate:"required,min=10"`
	DurationMin uint32 `json:"duration_min" validate:"required,gte=1"`
	ReleaseDate string `json:"release_date" validate:"required"`
	Rating      string `json:"rating" validate:"required"`
	IsShowing   *bool  `json:"is_showing"` // defaults to true when omitted
}

func (f *movieForm) trim() {
	f.Title = strings.TrimSpace(f.Title)
	f.PosterURL = strings.TrimSpace(f.PosterURL)
	f.Director = strings.TrimSpace(f.Director)
	f.Cast = strings.TrimSpace(f.Cast)
	f.Synopsis = strings.TrimSpace(f.Synopsis)
	f.ReleaseDate = strings.TrimSpace(f.ReleaseDate)
	f.Rating = strings.TrimSpace(f.Rating)
}

func (f *movieForm) apply(m *model.Movie) {
	m.Title = f.Title
	m.PosterURL = f.PosterURL
	m.Director = f.Director
	m.Cast = f.Cast
	m.Synopsis = f.Synopsis
	m.DurationMin = f.DurationMin
	m.ReleaseDate = f.ReleaseDate
	m.Rating = f.Rating
	if f.IsShowing != nil {
		m.IsShowing = *f.IsShowing
	} else {
		m.IsShowing = true
	}
}

// CreateMovie handles POST /v1/admin/movies. The slug is derived from the
// title; a title that normalizes to an existing slug is a 409 conflict.
func (h *AdminHandler) CreateMovie(c echo.Context) error {
	var form movieForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	form.trim()
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	slug := utils.Slugify(form.Title)
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title must contain letters or digits"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	exists, err := h.Movies.SlugExists(ctx, slug)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if exists {
		return c.JSON(http.StatusConflict, echo.Map{"error": "a movie with this title already exists"})
	}

	m := model.Movie{Slug: slug}
	form.apply(&m)
	if err := h.Movies.Create(ctx, &m); err != nil {
		if err == repository.ErrSlugExists {
			// lost the race between the existence check and the insert
			return c.JSON(http.StatusConflict, echo.Map{"error": "a movie with this title already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create movie"})
	}
	return c.JSON(http.StatusCreated, m)
}

// UpdateMovie handles PUT /v1/admin/movies/:id. The full form is
// re-validated; the slug stays as derived at creation.
func (h *AdminHandler) UpdateMovie(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie id is required"})
	}
	var form movieForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	form.trim()
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	m, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	form.apply(m)
	if err := h.Movies.Update(ctx, m); err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteMovie handles DELETE /v1/admin/movies/:id. Showtimes of the movie
// (and their bookings) are removed by the database cascade.
func (h *AdminHandler) DeleteMovie(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	if err := h.Movies.Delete(ctx, id); err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "movie deleted"})
}

// ListMovies handles GET /v1/admin/movies: every movie, newest first, for
// the dashboard table.
func (h *AdminHandler) ListMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	items, err := h.Movies.List(ctx, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
