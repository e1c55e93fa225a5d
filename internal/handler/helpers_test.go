package handler

import (
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

// errDuplicate1062 mimics the MySQL duplicate-key error shape the
// repositories detect.
func errDuplicate1062() error {
	return errors.New("Error 1062: Duplicate entry 'x' for key 'uniq'")
}

func userRow(id uint64, name, email, hash, role string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow(id, name, email, hash, role, now, now)
}

var movieCols = []string{"id", "title", "slug", "poster_url", "director", "cast", "synopsis",
	"duration_min", "release_date", "rating", "is_showing", "created_at", "updated_at"}

func movieRow(id uint64, title, slug string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(movieCols).
		AddRow(id, title, slug, "https://example.com/poster.jpg", "A Director", "Lead, Support",
			"A synopsis well over ten characters.", 120, "2026-01-01", "PG-13", true, now, now)
}
