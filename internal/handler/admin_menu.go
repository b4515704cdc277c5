// Admin endpoints for the menu catalog: list, create, edit, toggle
// availability and delete.  Every mutation answers with freshly re-read
// store state, never with an echo of the request payload, so the console's
// view always matches the last successful read.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tangentorv/restaurant-booking/internal/repository"
)

type menuItemReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents"`
}

var (
	errNameRequired  = errors.New("name is required")
	errPriceRequired = errors.New("price is required")
	errPriceNegative = errors.New("price must not be negative")
)

// validateMenuItem applies the form-level checks shared by create and
// update.  It runs before any query is issued: a blank name or a missing or
// negative price never reaches the store.
func validateMenuItem(name string, priceCents *int64) error {
	if strings.TrimSpace(name) == "" {
		return errNameRequired
	}
	if priceCents == nil {
		return errPriceRequired
	}
	if *priceCents < 0 {
		return errPriceNegative
	}
	return nil
}

// ListMenu handles GET /v1/admin/menu and returns every item, available or
// not, ordered by name.
func (h *AdminHandler) ListMenu(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Menu.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateMenuItem handles POST /v1/admin/menu.
func (h *AdminHandler) CreateMenuItem(c echo.Context) error {
	var body menuItemReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateMenuItem(body.Name, body.PriceCents); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	item := &repository.MenuItem{
		Name:        strings.TrimSpace(body.Name),
		Description: normalizeOptional(body.Description),
		PriceCents:  *body.PriceCents,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Menu.Create(ctx, item); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create menu item"})
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem handles PUT /v1/admin/menu/:id.  It rewrites name,
// description and price; availability is untouchable through this path.
func (h *AdminHandler) UpdateMenuItem(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body menuItemReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validateMenuItem(body.Name, body.PriceCents); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Menu.Update(ctx, id, strings.TrimSpace(body.Name), normalizeOptional(body.Description), *body.PriceCents); err != nil {
		if err == repository.ErrMenuItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Menu.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// ToggleAvailability handles PATCH /v1/admin/menu/:id/availability.  The
// flip is independent of the edit form and returns the re-read row.
func (h *AdminHandler) ToggleAvailability(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Menu.ToggleAvailability(ctx, id); err != nil {
		if err == repository.ErrMenuItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Menu.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteMenuItem handles DELETE /v1/admin/menu/:id.  The confirmation prompt
// is the client's job; this is the post-confirmation, irreversible call.
func (h *AdminHandler) DeleteMenuItem(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Menu.Delete(ctx, id); err != nil {
		if err == repository.ErrMenuItemNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// normalizeOptional trims an optional text field and maps empty to NULL.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// reqCtx derives a bounded context for handler-issued store calls.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
