package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/taxe/internal/pkg/apierror"
	"github.com/piresc/taxe/internal/pkg/logger"
	"github.com/piresc/taxe/internal/pkg/models"
	"github.com/piresc/taxe/internal/pkg/session"
	"github.com/piresc/taxe/internal/pkg/validation"
)

// ErrBookingClosed is returned when cancelling a booking that already ended
var ErrBookingClosed = errors.New("booking is no longer active")

// GetBooking loads one booking with its customer and driver populated
func (b *BookingUC) GetBooking(ctx context.Context, id string) (models.Booking, error) {
	token, err := b.token(ctx)
	if err != nil {
		return models.Booking{}, err
	}

	booking, err := b.bookingGW.GetBooking(ctx, token, id)
	if err != nil {
		return models.Booking{}, b.classifier.Wrap(ctx, apierror.OpGetBooking, err)
	}
	return booking, nil
}

// ListBookings lists the signed-in user's bookings
func (b *BookingUC) ListBookings(ctx context.Context, query models.BookingQuery) ([]models.Booking, error) {
	token, err := b.token(ctx)
	if err != nil {
		return nil, err
	}
	user, err := b.store.User(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	list, err := b.bookingGW.ListUserBookings(ctx, token, user.ID, query)
	if err != nil {
		return nil, b.classifier.Wrap(ctx, apierror.OpListUserBookings, err)
	}
	return list, nil
}

// MostRecentBooking returns the user's latest booking in full, or nil if the
// user has never booked. The list endpoint may only carry references, so the
// booking is fetched again by id.
func (b *BookingUC) MostRecentBooking(ctx context.Context) (*models.Booking, error) {
	list, err := b.ListBookings(ctx, models.BookingQuery{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	booking, err := b.GetBooking(ctx, list[0].ID)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ActiveBooking returns the booking remembered as active, or nil. A remembered
// booking that has since finished, been cancelled, or that the server no longer
// serves to this user is forgotten.
func (b *BookingUC) ActiveBooking(ctx context.Context) (*models.Booking, error) {
	id, err := b.store.ActiveBooking(ctx)
	if errors.Is(err, session.ErrNoActiveBooking) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active booking: %w", err)
	}

	booking, err := b.GetBooking(ctx, id)
	if apierror.IsKind(err, apierror.KindDomainRejected) {
		b.forgetActive(ctx, id)
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if !booking.Status.IsActive() {
		b.forgetActive(ctx, booking.ID)
		return nil, nil
	}
	return &booking, nil
}

// CreateBooking books a ride and remembers it as the active booking
func (b *BookingUC) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.APIResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	token, err := b.token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := b.bookingGW.CreateBooking(ctx, token, req)
	if err != nil {
		return nil, b.classifier.Wrap(ctx, apierror.OpCreateBooking, err)
	}

	if resp.ID != "" {
		if err := b.store.PutActiveBooking(ctx, resp.ID); err != nil {
			logger.Warn("Failed to remember active booking", logger.String("booking_id", resp.ID), logger.Err(err))
		}
	}
	logger.Info("Booking created", logger.String("booking_id", resp.ID))
	return resp, nil
}

func (b *BookingUC) EditBooking(ctx context.Context, id string, req models.BookingRequest) (*models.APIResponse, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	token, err := b.token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := b.bookingGW.EditBooking(ctx, token, id, req)
	if err != nil {
		return nil, b.classifier.Wrap(ctx, apierror.OpEditBooking, err)
	}
	if req.Status != "" && !req.Status.IsActive() {
		b.forgetActive(ctx, id)
	}
	return resp, nil
}

// CancelBooking marks booking as cancelled on the server
func (b *BookingUC) CancelBooking(ctx context.Context, booking models.Booking) (*models.APIResponse, error) {
	if !booking.Status.IsActive() {
		return nil, fmt.Errorf("cancel booking %s in status %s: %w", booking.ID, booking.Status, ErrBookingClosed)
	}
	return b.EditBooking(ctx, booking.ID, booking.WithStatus(models.BookingStatusCancelled).Request())
}

// forgetActive drops the remembered active booking if it is id
func (b *BookingUC) forgetActive(ctx context.Context, id string) {
	active, err := b.store.ActiveBooking(ctx)
	if err != nil || active != id {
		return
	}
	if err := b.store.DeleteActiveBooking(ctx); err != nil {
		logger.Warn("Failed to forget active booking", logger.String("booking_id", id), logger.Err(err))
	}
}

func (b *BookingUC) token(ctx context.Context) (string, error) {
	token, err := b.store.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return token, nil
}
