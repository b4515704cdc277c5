// Package repository contains data access logic separated from HTTP handlers.
// This file defines sentinel errors shared across repositories so handlers
// can map failure scenarios to HTTP responses without string matching.
package repository

import "errors"

// ErrMenuItemNotFound is returned when a menu item id matches no row.
var ErrMenuItemNotFound = errors.New("menu item not found")

// ErrBookingNotFound is returned when a booking id matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrInvalidStatus is returned when a status value is outside the
// pending/confirmed/cancelled enumeration.
var ErrInvalidStatus = errors.New("invalid booking status")

// ErrEmailExists is returned when a staff account already uses the email.
var ErrEmailExists = errors.New("email already exists")
