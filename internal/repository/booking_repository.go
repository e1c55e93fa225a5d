package repository

import (
	"context"
	"database/sql"

	"github.com/farhanhr/cinema-booking-api/internal/model"
)

// BookingRepo manages persistence for bookings. Bookings are insert-only
// from the application's point of view; there is no update or delete path.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Create inserts a booking row. UserID, ShowtimeID, Tickets, TotalPrice and
// Status must be set by the caller; the handler computes TotalPrice from the
// showtime price before calling. The generated ID and created_at are
// populated on the struct.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO bookings (user_id, showtime_id, tickets, total_price, status) VALUES (?, ?, ?, ?, ?)",
		b.UserID, b.ShowtimeID, b.Tickets, b.TotalPrice, b.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM bookings WHERE id = ?", b.ID).Scan(&b.CreatedAt)
}

// ListByUser returns the user's bookings newest-first, joined with the
// showtime, movie and theater so the ticket list renders in one query.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.BookingDetail, error) {
	const q = `SELECT b.id, b.tickets, b.total_price, b.status, b.created_at,
	                  s.starts_at, m.title, m.poster_url, t.name
	           FROM bookings b
	           JOIN showtimes s ON s.id = b.showtime_id
	           JOIN movies m ON m.id = s.movie_id
	           JOIN theaters t ON t.id = s.theater_id
	           WHERE b.user_id = ?
	           ORDER BY b.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BookingDetail, 0)
	for rows.Next() {
		var d model.BookingDetail
		if err := rows.Scan(&d.ID, &d.Tickets, &d.TotalPrice, &d.Status, &d.CreatedAt,
			&d.StartsAt, &d.MovieTitle, &d.PosterURL, &d.TheaterName); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// DB exposes the underlying handle for callers that need it (tests, health).
func (r *BookingRepo) DB() *sql.DB { return r.db }
