// This file defines repository methods for the movie catalog. Movies are the
// only aggregate with a full CRUD surface; all mutations are admin-scoped at
// the handler layer. The unique slug column backs conflict detection.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/farhanhr/cinema-booking-api/internal/model"
)

// MovieRepo encapsulates all database queries related to movies.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// `cast` is a reserved word in MySQL and must stay backtick-quoted in every
// statement touching the column.
const movieCols = "id, title, slug, poster_url, director, `cast`, synopsis, duration_min, release_date, rating, is_showing, created_at, updated_at"

func scanMovie(row *sql.Row, m *model.Movie) error {
	return row.Scan(&m.ID, &m.Title, &m.Slug, &m.PosterURL, &m.Director, &m.Cast,
		&m.Synopsis, &m.DurationMin, &m.ReleaseDate, &m.Rating, &m.IsShowing,
		&m.CreatedAt, &m.UpdatedAt)
}

// Create inserts a new movie and populates the generated ID plus DB-default
// fields (is_showing, timestamps) on the given struct. A duplicate slug is
// reported as ErrSlugExists.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = "INSERT INTO movies (title, slug, poster_url, director, `cast`, synopsis, duration_min, release_date, rating, is_showing) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Slug, m.PosterURL, m.Director,
		m.Cast, m.Synopsis, m.DurationMin, m.ReleaseDate, m.Rating, m.IsShowing)
	if err != nil {
		if isDuplicate(err) {
			return ErrSlugExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	// Re-read the row so callers receive DB-generated timestamps.
	const sel = "SELECT " + movieCols + " FROM movies WHERE id = ?"
	return scanMovie(r.db.QueryRowContext(ctx, sel, m.ID), m)
}

// GetByID retrieves a movie by id, returning ErrMovieNotFound when absent.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	const q = "SELECT " + movieCols + " FROM movies WHERE id = ?"
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetBySlug retrieves a movie by its unique slug.
func (r *MovieRepo) GetBySlug(ctx context.Context, slug string) (*model.Movie, error) {
	const q = "SELECT " + movieCols + " FROM movies WHERE slug = ?"
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, slug), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// SlugExists reports whether any movie already uses the given slug.
func (r *MovieRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM movies WHERE slug = ? LIMIT 1", slug).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns movies newest-first. When showingOnly is true the result is
// restricted to rows with is_showing = TRUE (the public listing).
func (r *MovieRepo) List(ctx context.Context, showingOnly bool) ([]model.Movie, error) {
	q := "SELECT " + movieCols + " FROM movies ORDER BY created_at DESC"
	if showingOnly {
		q = "SELECT " + movieCols + " FROM movies WHERE is_showing = TRUE ORDER BY created_at DESC"
	}
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Slug, &m.PosterURL, &m.Director, &m.Cast,
			&m.Synopsis, &m.DurationMin, &m.ReleaseDate, &m.Rating, &m.IsShowing,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// Update rewrites every editable column of the movie and stamps updated_at.
// The slug is intentionally not touched: it is fixed at creation so that
// existing URLs keep working after a title change.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	const q = "UPDATE movies " +
		"SET title=?, poster_url=?, director=?, `cast`=?, synopsis=?, duration_min=?, release_date=?, rating=?, is_showing=?, updated_at=NOW() " +
		"WHERE id=?"
	if _, err := r.db.ExecContext(ctx, q, m.Title, m.PosterURL, m.Director, m.Cast,
		m.Synopsis, m.DurationMin, m.ReleaseDate, m.Rating, m.IsShowing, m.ID); err != nil {
		return err
	}
	const sel = "SELECT " + movieCols + " FROM movies WHERE id = ?"
	if err := scanMovie(r.db.QueryRowContext(ctx, sel, m.ID), m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMovieNotFound
		}
		return err
	}
	return nil
}

// Delete removes a movie row. Dependent showtimes (and their bookings) go
// with it through ON DELETE CASCADE. Returns ErrMovieNotFound when no row
// matched.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
