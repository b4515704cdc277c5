// This file defines the Booking model and repository methods for table
// reservations.  A booking is created by an unauthenticated visitor through
// the intake form and afterwards managed only by admins.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// Booking statuses.  The set is closed; any status may move to any other.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// AllStatuses lists every valid booking status.
var AllStatuses = []string{StatusPending, StatusConfirmed, StatusCancelled}

// ValidStatus reports whether s is one of the three booking statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// Booking mirrors the 'bookings' table.  BookingAt is written in the DB
// DATETIME format "2006-01-02 15:04:05" (UTC); because the pool opens with
// parseTime enabled the driver returns the column as time.Time, so reads
// render it into the string field as RFC 3339 and that is the wire shape.
// Phone and Notes are nullable.
type Booking struct {
	ID           uint64    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	Guests       uint32    `json:"guests"`
	BookingAt    string    `json:"booking_datetime"`
	Notes        *string   `json:"notes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookingRepo encapsulates all database queries for bookings.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = "id, customer_name, email, phone, guests, booking_datetime, status, notes, created_at"

func scanBooking(row interface{ Scan(...any) error }, b *Booking) error {
	var phone, notes sql.NullString
	if err := row.Scan(&b.ID, &b.CustomerName, &b.Email, &phone, &b.Guests, &b.BookingAt, &b.Status, &notes, &b.CreatedAt); err != nil {
		return err
	}
	b.Phone = nil
	if phone.Valid {
		p := phone.String
		b.Phone = &p
	}
	b.Notes = nil
	if notes.Valid {
		n := notes.String
		b.Notes = &n
	}
	return nil
}

// List returns all bookings ordered by booking_datetime ascending, the order
// the admin console displays them in.
func (r *BookingRepo) List(ctx context.Context) ([]*Booking, error) {
	const q = "SELECT " + bookingColumns + " FROM bookings ORDER BY booking_datetime ASC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Booking, 0)
	for rows.Next() {
		b := new(Booking)
		if err := scanBooking(rows, b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one booking, returning ErrBookingNotFound when the id
// matches no row.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*Booking, error) {
	const q = "SELECT " + bookingColumns + " FROM bookings WHERE id = ?"
	b := new(Booking)
	if err := scanBooking(r.db.QueryRowContext(ctx, q, id), b); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// Create inserts a new booking.  The status column is written from the
// record, which the intake handler always sets to StatusPending; created_at
// is assigned by the store.  The row is read back after the insert so the
// caller returns the persisted state.
func (r *BookingRepo) Create(ctx context.Context, b *Booking) error {
	const q = `INSERT INTO bookings (customer_name, email, phone, guests, booking_datetime, status, notes)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, b.CustomerName, b.Email, b.Phone, b.Guests, b.BookingAt, b.Status, b.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const sel = "SELECT " + bookingColumns + " FROM bookings WHERE id = ?"
	return scanBooking(r.db.QueryRowContext(ctx, sel, b.ID), b)
}

// UpdateStatus sets a booking's status to any of the three enumerated values.
// There is no transition restriction.  Returns ErrInvalidStatus for values
// outside the enum and ErrBookingNotFound when the id matches no row.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Setting the current status again affects no rows; only report
		// missing when the booking really does not exist.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes one booking permanently.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
