// Admin endpoints for the booking list: list, status changes and delete.
// Status changes publish a booking.status_changed event after the write; a
// broker failure is logged by the publisher and never fails the request.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tangentorv/restaurant-booking/internal/queue"
	"github.com/tangentorv/restaurant-booking/internal/repository"
	queuepublisher "github.com/tangentorv/restaurant-booking/internal/service"
)

// TransitionTargets returns the statuses a booking may be moved to from
// current: always the two it is not in, never the current one.  An unknown
// current status offers the full set.
func TransitionTargets(current string) []string {
	out := make([]string, 0, 2)
	for _, s := range repository.AllStatuses {
		if s != current {
			out = append(out, s)
		}
	}
	return out
}

// ListBookings handles GET /v1/admin/bookings, ordered by booking time.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// BookingTransitions handles GET /v1/admin/bookings/:id/transitions and
// tells the console which status buttons to render for one booking.
func (h *AdminHandler) BookingTransitions(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  b.Status,
		"targets": TransitionTargets(b.Status),
	})
}

// UpdateBookingStatus handles PATCH /v1/admin/bookings/:id/status.  Any of
// the three statuses is accepted as a target; values outside the enum are
// rejected before the store is touched.
func (h *AdminHandler) UpdateBookingStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.ToLower(strings.TrimSpace(body.Status))
	if !repository.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be pending, confirmed or cancelled"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Bookings.UpdateStatus(ctx, id, status); err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	_ = queuepublisher.PublishBookingEvent(ctx, queue.BookingEvent{
		Event:        queue.EventStatusChanged,
		BookingID:    updated.ID,
		CustomerName: updated.CustomerName,
		Guests:       updated.Guests,
		BookingAt:    updated.BookingAt,
		Status:       updated.Status,
	})

	return c.JSON(http.StatusOK, updated)
}

// DeleteBooking handles DELETE /v1/admin/bookings/:id, the call issued after
// the console's confirmation prompt.
func (h *AdminHandler) DeleteBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Bookings.Delete(ctx, id); err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
