// The booking intake form.  Visitors submit name, contact details, date,
// time and party size; the created booking always starts out pending no
// matter what the client sends.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tangentorv/restaurant-booking/internal/queue"
	"github.com/tangentorv/restaurant-booking/internal/repository"
	queuepublisher "github.com/tangentorv/restaurant-booking/internal/service"
)

// Party size bounds for the intake form.  Larger groups are asked to phone
// the restaurant directly.
const (
	minGuests = 1
	maxGuests = 8
)

// bookingIntakeReq is the wire shape of the intake form.  Date and time
// arrive as separate fields the way the form collects them and are combined
// into one timestamp before storage.  Status is deliberately absent.
type bookingIntakeReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`  // "2006-01-02"
	Time    string `json:"time"`  // "15:04"
	Guests  uint32 `json:"guests"`
	Message string `json:"message"`
}

var (
	errIntakeMissing = errors.New("name, email, phone, date and time are required")
	errIntakeGuests  = fmt.Errorf("guests must be between %d and %d", minGuests, maxGuests)
	errIntakeTime    = errors.New("invalid date or time")
)

// validateBookingIntake runs the presence and range checks before any store
// call.  Message is the only optional field.
func validateBookingIntake(req bookingIntakeReq) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		strings.TrimSpace(req.Date) == "" ||
		strings.TrimSpace(req.Time) == "" {
		return errIntakeMissing
	}
	if req.Guests < minGuests || req.Guests > maxGuests {
		return errIntakeGuests
	}
	if _, err := combineBookingTime(req.Date, req.Time); err != nil {
		return errIntakeTime
	}
	return nil
}

// combineBookingTime merges the form's date and time fields into one UTC
// timestamp in the store's DATETIME format.
func combineBookingTime(date, clock string) (string, error) {
	t, err := time.Parse("2006-01-02 15:04", strings.TrimSpace(date)+" "+strings.TrimSpace(clock))
	if err != nil {
		return "", err
	}
	return t.UTC().Format("2006-01-02 15:04:05"), nil
}

// newBookingFromIntake maps a validated intake request onto a booking
// record.  The status is forced to pending here; there is no code path from
// the public form to any other initial status.
func newBookingFromIntake(req bookingIntakeReq) repository.Booking {
	bookingAt, _ := combineBookingTime(req.Date, req.Time)
	phone := strings.TrimSpace(req.Phone)
	b := repository.Booking{
		CustomerName: strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        &phone,
		Guests:       req.Guests,
		BookingAt:    bookingAt,
		Status:       repository.StatusPending,
	}
	if msg := strings.TrimSpace(req.Message); msg != "" {
		b.Notes = &msg
	}
	return b
}

// CreateBooking handles POST /v1/bookings.  Validation failures answer 400
// without touching the store; store failures answer 500 so the form can keep
// the visitor's input and offer a retry.
func (h *PublicHandler) CreateBooking(c echo.Context) error {
	var req bookingIntakeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateBookingIntake(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	booking := newBookingFromIntake(req)
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Bookings.Create(ctx, &booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not save booking"})
	}

	_ = queuepublisher.PublishBookingEvent(ctx, queue.BookingEvent{
		Event:        queue.EventReceived,
		BookingID:    booking.ID,
		CustomerName: booking.CustomerName,
		Guests:       booking.Guests,
		BookingAt:    booking.BookingAt,
		Status:       booking.Status,
	})

	return c.JSON(http.StatusCreated, booking)
}
