// Package queue defines message payloads exchanged over the message broker.
package queue

// Event kinds carried on the booking.events queue.
const (
	EventReceived      = "booking.received"
	EventStatusChanged = "booking.status_changed"
)

// BookingEvent is published when a booking is created through the intake
// form or when an admin changes its status.  It carries enough information
// for downstream consumers to log or notify without querying the primary
// database.
type BookingEvent struct {
	Event        string `json:"event"`
	BookingID    uint64 `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	Guests       uint32 `json:"guests"`
	BookingAt    string `json:"booking_datetime"`
	Status       string `json:"status"`
}
