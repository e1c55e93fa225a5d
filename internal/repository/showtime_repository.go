package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/farhanhr/cinema-booking-api/internal/model"
)

// ShowtimeRepo manages persistence for showtimes. Showtimes link a movie to
// a theater at a start time with a ticket price; booking totals derive from
// that price.
type ShowtimeRepo struct {
	db *sql.DB
}

func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo {
	return &ShowtimeRepo{db: db}
}

// Create inserts a showtime and assigns the generated ID.
func (r *ShowtimeRepo) Create(ctx context.Context, s *model.Showtime) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO showtimes (movie_id, theater_id, starts_at, price) VALUES (?, ?, ?, ?)",
		s.MovieID, s.TheaterID, s.StartsAt, s.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID retrieves a showtime by id, returning ErrShowtimeNotFound when
// absent. The booking handler relies on this to price the booking.
func (r *ShowtimeRepo) GetByID(ctx context.Context, id uint64) (*model.Showtime, error) {
	var s model.Showtime
	err := r.db.QueryRowContext(ctx,
		"SELECT id, movie_id, theater_id, starts_at, price FROM showtimes WHERE id = ?", id).
		Scan(&s.ID, &s.MovieID, &s.TheaterID, &s.StartsAt, &s.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShowtimeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a showtime row, returning ErrShowtimeNotFound when no row
// matched. Bookings referencing it are removed by cascade.
func (r *ShowtimeRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM showtimes WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrShowtimeNotFound
	}
	return nil
}

// ListByMovie returns the showtimes of a movie starting at or after `from`,
// joined with the hosting theater, ordered by start time. The handler groups
// the result by calendar date for the showtime picker.
func (r *ShowtimeRepo) ListByMovie(ctx context.Context, movieID uint64, from time.Time) ([]model.ShowtimeDetail, error) {
	const q = `SELECT s.id, s.movie_id, s.theater_id, t.name, t.capacity, s.starts_at, s.price
	           FROM showtimes s
	           JOIN theaters t ON t.id = s.theater_id
	           WHERE s.movie_id = ? AND s.starts_at >= ?
	           ORDER BY s.starts_at`
	rows, err := r.db.QueryContext(ctx, q, movieID, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ShowtimeDetail, 0)
	for rows.Next() {
		var d model.ShowtimeDetail
		if err := rows.Scan(&d.ID, &d.MovieID, &d.TheaterID, &d.TheaterName, &d.Capacity, &d.StartsAt, &d.Price); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// Search finds showtimes whose movie title contains `title` (case handled by
// the column collation) within the optional [from, to] window. Zero times
// disable the respective bound. Results carry the movie title so the search
// page can render without further lookups.
func (r *ShowtimeRepo) Search(ctx context.Context, title string, from, to time.Time) ([]model.ShowtimeDetail, error) {
	q := `SELECT s.id, s.movie_id, m.title, s.theater_id, t.name, t.capacity, s.starts_at, s.price
	      FROM showtimes s
	      JOIN movies m ON m.id = s.movie_id
	      JOIN theaters t ON t.id = s.theater_id
	      WHERE 1=1`
	args := make([]any, 0, 3)
	if title != "" {
		q += " AND m.title LIKE ?"
		args = append(args, "%"+title+"%")
	}
	if !from.IsZero() {
		q += " AND s.starts_at >= ?"
		args = append(args, from)
	}
	if !to.IsZero() {
		q += " AND s.starts_at <= ?"
		args = append(args, to)
	}
	q += " ORDER BY s.starts_at"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ShowtimeDetail, 0)
	for rows.Next() {
		var d model.ShowtimeDetail
		if err := rows.Scan(&d.ID, &d.MovieID, &d.MovieTitle, &d.TheaterID, &d.TheaterName, &d.Capacity, &d.StartsAt, &d.Price); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
