package models

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusInProgress BookingStatus = "In_Progress"
	BookingStatusArrived    BookingStatus = "Arrived"
	BookingStatusCancelled  BookingStatus = "Cancelled"
	BookingStatusFinished   BookingStatus = "Finished"
)

// bookingStatusByWire is the closed set of accepted wire literals
var bookingStatusByWire = map[string]BookingStatus{
	"Pending":     BookingStatusPending,
	"In_Progress": BookingStatusInProgress,
	"InProgress":  BookingStatusInProgress,
	"Arrived":     BookingStatusArrived,
	"Cancelled":   BookingStatusCancelled,
	"Finished":    BookingStatusFinished,
}

// ParseBookingStatus matches s exactly (case-sensitive) against the known statuses
func ParseBookingStatus(s string) (BookingStatus, bool) {
	st, ok := bookingStatusByWire[s]
	return st, ok
}

// IsActive reports whether the booking still needs attention
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusInProgress || s == BookingStatusArrived
}

// Booking is a single ride request. Values are produced by the decoder and are
// not modified afterwards; the With* helpers return edited copies.
type Booking struct {
	ID             string
	PickupLocation string
	Destination    string
	ScheduledTime  time.Time
	PassengerCount int
	Notes          []string
	Status         BookingStatus
	Customer       UserRef
	Driver         *UserRef // nil until a driver is assigned
	Company        string
	CreatedAt      time.Time
}

// HasDriver reports whether a driver reference is present
func (b Booking) HasDriver() bool {
	return b.Driver != nil
}

// WithStatus returns a copy of b with a new status
func (b Booking) WithStatus(s BookingStatus) Booking {
	c := b.clone()
	c.Status = s
	return c
}

// WithNotes returns a copy of b with the given notes
func (b Booking) WithNotes(notes []string) Booking {
	c := b.clone()
	c.Notes = append([]string{}, notes...)
	return c
}

// Request converts the booking into the payload used to edit it
func (b Booking) Request() BookingRequest {
	return BookingRequest{
		PickupLocation: b.PickupLocation,
		Destination:    b.Destination,
		Time:           FormatTime(b.ScheduledTime),
		PassengerCount: b.PassengerCount,
		Notes:          append([]string{}, b.Notes...),
		Status:         b.Status,
	}
}

func (b Booking) clone() Booking {
	c := b
	c.Notes = append([]string{}, b.Notes...)
	if b.Driver != nil {
		d := *b.Driver
		c.Driver = &d
	}
	return c
}

// Equal compares every field of two bookings
func (b Booking) Equal(o Booking) bool {
	if b.ID != o.ID || b.PickupLocation != o.PickupLocation || b.Destination != o.Destination ||
		b.PassengerCount != o.PassengerCount || b.Status != o.Status || b.Company != o.Company ||
		!b.ScheduledTime.Equal(o.ScheduledTime) || !b.CreatedAt.Equal(o.CreatedAt) {
		return false
	}
	if len(b.Notes) != len(o.Notes) {
		return false
	}
	for i := range b.Notes {
		if b.Notes[i] != o.Notes[i] {
			return false
		}
	}
	if !b.Customer.Equal(o.Customer) {
		return false
	}
	if (b.Driver == nil) != (o.Driver == nil) {
		return false
	}
	return b.Driver == nil || b.Driver.Equal(*o.Driver)
}

// BookingRequest is the payload for creating or editing a booking
type BookingRequest struct {
	PickupLocation string        `json:"pickup_location" validate:"required"`
	Destination    string        `json:"destination" validate:"required"`
	Time           string        `json:"time" validate:"required,taxe_time"`
	PassengerCount int           `json:"no_passengers" validate:"gte=1"`
	Notes          []string      `json:"notes,omitempty"`
	Status         BookingStatus `json:"status,omitempty" validate:"omitempty,taxe_status"`
}

// BookingQuery filters a user's booking list. Zero Limit means no limit.
type BookingQuery struct {
	Limit  int
	Active bool
}
