package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTokenValidate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepo(db)
	cols := []string{"user_id", "expires_at", "revoked_at"}

	// active token
	mock.ExpectQuery("SELECT user_id, expires_at, revoked_at FROM refresh_tokens").
		WithArgs("hash-active").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(7, time.Now().UTC().Add(time.Hour), nil))
	uid, err := repo.Validate(context.Background(), "hash-active")
	if err != nil || uid != 7 {
		t.Fatalf("Validate active = (%d, %v), want (7, nil)", uid, err)
	}

	// expired token behaves like a missing one
	mock.ExpectQuery("SELECT user_id, expires_at, revoked_at FROM refresh_tokens").
		WithArgs("hash-expired").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(7, time.Now().UTC().Add(-time.Minute), nil))
	if _, err := repo.Validate(context.Background(), "hash-expired"); err != sql.ErrNoRows {
		t.Fatalf("Validate expired = %v, want sql.ErrNoRows", err)
	}

	// revoked token behaves like a missing one
	revoked := time.Now().UTC().Add(-time.Minute)
	mock.ExpectQuery("SELECT user_id, expires_at, revoked_at FROM refresh_tokens").
		WithArgs("hash-revoked").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(7, time.Now().UTC().Add(time.Hour), revoked))
	if _, err := repo.Validate(context.Background(), "hash-revoked"); err != sql.ErrNoRows {
		t.Fatalf("Validate revoked = %v, want sql.ErrNoRows", err)
	}
}
