package handler

import (
	"github.com/tangentorv/restaurant-booking/internal/repository"
)

// AdminHandler bundles the repositories behind the admin console: the menu
// catalog and the booking list.
type AdminHandler struct {
	Menu     *repository.MenuRepo
	Bookings *repository.BookingRepo
}

// NewAdminHandler constructs an AdminHandler and panics on nil dependencies.
func NewAdminHandler(menu *repository.MenuRepo, bookings *repository.BookingRepo) *AdminHandler {
	if menu == nil || bookings == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Menu: menu, Bookings: bookings}
}
