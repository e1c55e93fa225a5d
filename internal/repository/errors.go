// Package repository contains the data access layer. Each aggregate gets a
// small repo struct over *sql.DB issuing raw SQL. Sentinel errors defined
// here let handlers translate failures into HTTP statuses without string
// matching: not-found errors become 404, uniqueness violations become 409.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when registering with an email that is
// already taken. Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrSlugExists is returned when creating a movie whose title normalizes
// to a slug that is already present. Handlers translate it into HTTP 409.
var ErrSlugExists = errors.New("slug already exists")

// ErrMovieNotFound indicates that no movie row matched the given id or slug.
var ErrMovieNotFound = errors.New("movie not found")

// ErrTheaterNotFound indicates that no theater row matched the given id.
var ErrTheaterNotFound = errors.New("theater not found")

// ErrShowtimeNotFound indicates that no showtime row matched the given id.
var ErrShowtimeNotFound = errors.New("showtime not found")

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062) on a unique column.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
