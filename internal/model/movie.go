package model

import "time"

// Movie represents a row in the `movies` table. The slug is derived from
// the title at creation time and is unique across the catalog; it never
// changes afterwards, even when the title is updated.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – display title of the movie.
//  Slug        – unique URL-safe identifier derived from Title.
//  PosterURL   – location of the poster image.
//  Director    – director name.
//  Cast        – comma-separated cast list.
//  Synopsis    – plot summary, at least ten characters.
//  DurationMin – running time in minutes (positive).
//  ReleaseDate – release date as provided by the admin form.
//  Rating      – age or review rating label (e.g. "PG-13").
//  IsShowing   – whether the movie appears in the public listing.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Movie struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	PosterURL   string    `json:"poster_url"`
	Director    string    `json:"director"`
	Cast        string    `json:"cast"`
	Synopsis    string    `json:"synopsis"`
	DurationMin uint32    `json:"duration_min"`
	ReleaseDate string    `json:"release_date"`
	Rating      string    `json:"rating"`
	IsShowing   bool      `json:"is_showing"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
