// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// BookingConfirmedEvent is published when a booking is successfully created.
// It carries enough context for downstream consumers to log or notify
// without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	ShowtimeID  uint64 `json:"showtime_id"`
	MovieTitle  string `json:"movie_title,omitempty"`
	TheaterName string `json:"theater_name,omitempty"`
	Tickets     uint32 `json:"tickets"`
	TotalPrice  int64  `json:"total_price"`
	StartsAt    string `json:"starts_at"`
	ConfirmedAt string `json:"confirmed_at"`
}
