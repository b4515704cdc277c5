// Handlers for the public site.  These routes carry no authentication and
// return sanitized data only: the menu shows available dishes, and internal
// bookkeeping fields stay out of the responses.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tangentorv/restaurant-booking/internal/repository"
)

// PublicHandler aggregates the repositories needed by unauthenticated
// visitors: reading the menu and submitting a booking request.
type PublicHandler struct {
	Menu     *repository.MenuRepo
	Bookings *repository.BookingRepo
}

func NewPublicHandler(menu *repository.MenuRepo, bookings *repository.BookingRepo) *PublicHandler {
	if menu == nil || bookings == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Menu: menu, Bookings: bookings}
}

// PublicMenuItem is a menu item as exposed to visitors.  Availability flags
// and timestamps are omitted; an item is on the list precisely because it is
// available.
type PublicMenuItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	PriceCents  int64   `json:"price_cents"`
}

// GetMenu handles GET /v1/menu and returns available items ordered by name.
func (h *PublicHandler) GetMenu(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Menu.ListAvailable(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]PublicMenuItem, 0, len(items))
	for _, m := range items {
		out = append(out, PublicMenuItem{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			PriceCents:  m.PriceCents,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
