package model

import "time"

// Showtime represents a scheduled screening of a movie in a theater.
// Price is an integer amount in minor currency units and is the basis for
// the booking total. Deleting a movie or theater cascades to its showtimes.
//
// Fields:
//  ID        – primary key identifier.
//  MovieID   – movie being screened.
//  TheaterID – theater hosting the screening.
//  StartsAt  – when the screening begins (UTC).
//  Price     – ticket price in minor units.
type Showtime struct {
	ID        uint64    `json:"id"`
	MovieID   uint64    `json:"movie_id"`
	TheaterID uint64    `json:"theater_id"`
	StartsAt  time.Time `json:"starts_at"`
	Price     int64     `json:"price"`
}

// ShowtimeDetail is a showtime joined with the theater (and optionally the
// movie title) for listing and grouping on the public side.
type ShowtimeDetail struct {
	ID          uint64    `json:"id"`
	MovieID     uint64    `json:"movie_id"`
	MovieTitle  string    `json:"movie_title,omitempty"`
	TheaterID   uint64    `json:"theater_id"`
	TheaterName string    `json:"theater_name"`
	Capacity    uint32    `json:"capacity"`
	StartsAt    time.Time `json:"starts_at"`
	Price       int64     `json:"price"`
}
