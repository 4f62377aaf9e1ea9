package bookings

import (
	"context"

	"github.com/piresc/taxe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/taxe/services/bookings BookingGW

// BookingGW defines the booking endpoints of the taxe API
type BookingGW interface {
	GetBooking(ctx context.Context, token, id string) (models.Booking, error)
	ListUserBookings(ctx context.Context, token, userID string, query models.BookingQuery) ([]models.Booking, error)
	CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.APIResponse, error)
	EditBooking(ctx context.Context, token, id string, req models.BookingRequest) (*models.APIResponse, error)
}
