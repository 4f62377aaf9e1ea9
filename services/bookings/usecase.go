package bookings

import (
	"context"

	"github.com/piresc/taxe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/taxe/services/bookings BookingUC

// BookingUC covers everything the signed-in user does with bookings
type BookingUC interface {
	GetBooking(ctx context.Context, id string) (models.Booking, error)
	ListBookings(ctx context.Context, query models.BookingQuery) ([]models.Booking, error)
	MostRecentBooking(ctx context.Context) (*models.Booking, error)
	ActiveBooking(ctx context.Context) (*models.Booking, error)

	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.APIResponse, error)
	EditBooking(ctx context.Context, id string, req models.BookingRequest) (*models.APIResponse, error)
	CancelBooking(ctx context.Context, booking models.Booking) (*models.APIResponse, error)
}
