package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/farhanhr/cinema-booking-api/internal/model"
)

func TestBookingCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(1), uint64(2), uint32(3), int64(150000), "confirmed").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT created_at FROM bookings").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now().UTC()))

	b := model.Booking{
		UserID:     1,
		ShowtimeID: 2,
		Tickets:    3,
		TotalPrice: 150000,
		Status:     model.BookingConfirmed,
	}
	if err := repo.Create(context.Background(), &b); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID != 7 {
		t.Errorf("ID = %d, want 7", b.ID)
	}
	if b.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestBookingListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT b.id, b.tickets, b.total_price, b.status, b.created_at").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tickets", "total_price", "status", "created_at",
			"starts_at", "title", "poster_url", "name"}).
			AddRow(7, 3, 150000, "confirmed", now, now.Add(24*time.Hour), "Avatar 2", "https://example.com/p.jpg", "Studio 1"))

	items, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}
	if items[0].MovieTitle != "Avatar 2" || items[0].TheaterName != "Studio 1" || items[0].TotalPrice != 150000 {
		t.Errorf("unexpected detail: %+v", items[0])
	}
}
