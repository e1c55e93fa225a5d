package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farhanhr/cinema-booking-api/internal/model"
	"github.com/farhanhr/cinema-booking-api/internal/queue"
	"github.com/farhanhr/cinema-booking-api/internal/repository"
	"github.com/farhanhr/cinema-booking-api/internal/service"
)

// BookingHandler creates bookings and lists a user's tickets. Routes using
// it are wrapped in JWTAuth; the handler still guards against a missing
// identity and answers 401.
type BookingHandler struct {
	Showtimes *repository.ShowtimeRepo
	Bookings  *repository.BookingRepo
}

func NewBookingHandler(showtimes *repository.ShowtimeRepo, bookings *repository.BookingRepo) *BookingHandler {
	if showtimes == nil || bookings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Showtimes: showtimes, Bookings: bookings}
}

// maxTicketsPerBooking caps a single booking. The bound keeps the ticket
// count well inside uint32 so the persisted row always satisfies
// total_price = price * tickets.
const maxTicketsPerBooking = 10

// Create handles POST /v1/bookings. The total price is computed here as
// showtime price times ticket count; the insert is unconditional — there is
// no seat inventory or capacity check. On success a booking.confirmed event
// is published best-effort.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var body struct {
		ShowtimeID uint64 `json:"showtime_id"`
		Tickets    int    `json:"tickets"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.ShowtimeID == 0 || body.Tickets <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "showtime_id and positive tickets required"})
	}
	if body.Tickets > maxTicketsPerBooking {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at most 10 tickets per booking"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	st, err := h.Showtimes.GetByID(ctx, body.ShowtimeID)
	if err != nil {
		if err == repository.ErrShowtimeNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	b := model.Booking{
		UserID:     userID,
		ShowtimeID: st.ID,
		Tickets:    uint32(body.Tickets),
		TotalPrice: st.Price * int64(body.Tickets),
		Status:     model.BookingConfirmed,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}

	// Fire the event off the request path; publish failures are logged by
	// the publisher and never fail the booking.
	event := queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		ShowtimeID:  b.ShowtimeID,
		Tickets:     b.Tickets,
		TotalPrice:  b.TotalPrice,
		StartsAt:    st.StartsAt.UTC().Format(time.RFC3339),
		ConfirmedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = service.PublishBookingConfirmed(pubCtx, event)
	}()

	return c.JSON(http.StatusCreated, b)
}

// ListMine handles GET /v1/my-bookings: the session user's tickets joined
// with showtime, movie and theater, newest first.
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeoutSeconds*time.Second)
	defer cancel()

	items, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
