package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/farhanhr/cinema-booking-api/internal/model"
)

func TestCreateTheaterValidation(t *testing.T) {
	db, _ := newMockDB(t)
	h := newAdminHandler(db)

	cases := []struct{ name, body string }{
		{"empty name", `{"name":"  ","capacity":100}`},
		{"zero capacity", `{"name":"Studio 1","capacity":0}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/theaters", tc.body)
			if err := h.CreateTheater(c); err != nil {
				t.Fatalf("CreateTheater: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCreateShowtime(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAdminHandler(db)

	mock.ExpectQuery("SELECT .+ FROM movies WHERE id").
		WithArgs(uint64(5)).
		WillReturnRows(movieRow(5, "Avatar 2", "avatar-2"))
	mock.ExpectQuery("SELECT id, name, capacity FROM theaters").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity"}).AddRow(1, "Studio 1", 120))
	mock.ExpectExec("INSERT INTO showtimes").
		WillReturnResult(sqlmock.NewResult(2, 1))

	body := `{"movie_id":5,"theater_id":1,"starts_at":"2026-09-12T19:30:00Z","price":50000}`
	c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/showtimes", body)
	if err := h.CreateShowtime(c); err != nil {
		t.Fatalf("CreateShowtime: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var s model.Showtime
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.ID != 2 || s.Price != 50000 {
		t.Errorf("unexpected showtime: %+v", s)
	}
}

func TestCreateShowtimeDanglingMovie(t *testing.T) {
	db, mock := newMockDB(t)
	h := newAdminHandler(db)

	mock.ExpectQuery("SELECT .+ FROM movies WHERE id").
		WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)

	body := `{"movie_id":99,"theater_id":1,"starts_at":"2026-09-12T19:30:00Z","price":50000}`
	c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/showtimes", body)
	if err := h.CreateShowtime(c); err != nil {
		t.Fatalf("CreateShowtime: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateShowtimeBadTimestamp(t *testing.T) {
	db, _ := newMockDB(t)
	h := newAdminHandler(db)

	body := `{"movie_id":5,"theater_id":1,"starts_at":"tomorrow evening","price":50000}`
	c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/showtimes", body)
	if err := h.CreateShowtime(c); err != nil {
		t.Fatalf("CreateShowtime: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
