package model

import "time"

// Booking statuses. The booking handler inserts rows as confirmed directly;
// "pending" exists for rows seeded by external tooling.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
)

// Booking records a user's reservation of N tickets for a showtime.
// TotalPrice is computed at write time as showtime price times ticket count
// and the row is immutable afterwards.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – user who made the booking.
//  ShowtimeID – showtime being booked.
//  Tickets    – number of tickets (positive).
//  TotalPrice – showtime price × Tickets, in minor units.
//  Status     – "pending" or "confirmed".
//  CreatedAt  – creation timestamp.
type Booking struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	ShowtimeID uint64    `json:"showtime_id"`
	Tickets    uint32    `json:"tickets"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookingDetail is a booking joined with its showtime, movie and theater for
// the my-bookings listing.
type BookingDetail struct {
	ID          uint64    `json:"id"`
	Tickets     uint32    `json:"tickets"`
	TotalPrice  int64     `json:"total_price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	StartsAt    time.Time `json:"starts_at"`
	MovieTitle  string    `json:"movie_title"`
	PosterURL   string    `json:"poster_url"`
	TheaterName string    `json:"theater_name"`
}
