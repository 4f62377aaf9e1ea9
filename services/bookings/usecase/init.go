package usecase

import (
	"github.com/piresc/taxe/internal/pkg/apierror"
	"github.com/piresc/taxe/internal/pkg/session"
	"github.com/piresc/taxe/services/bookings"
)

type BookingUC struct {
	bookingGW  bookings.BookingGW
	store      session.Store
	classifier *apierror.Classifier
}

// NewBookingUC creates a new booking usecase instance
func NewBookingUC(
	bookingGW bookings.BookingGW,
	store session.Store,
	classifier *apierror.Classifier,
) *BookingUC {
	return &BookingUC{
		bookingGW:  bookingGW,
		store:      store,
		classifier: classifier,
	}
}
