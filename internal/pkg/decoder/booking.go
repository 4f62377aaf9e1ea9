package decoder

import (
	"encoding/json"
	"time"

	"github.com/piresc/taxe/internal/pkg/models"
)

// DecodeBooking decodes a single booking object
func DecodeBooking(data []byte) (models.Booking, error) {
	obj, err := splitObject("", data)
	if err != nil {
		return models.Booking{}, err
	}
	return decodeBooking("", obj)
}

// DecodeBookingObject decodes a booking whose members have already been split out
func DecodeBookingObject(obj map[string]json.RawMessage) (models.Booking, error) {
	return decodeBooking("", obj)
}

// DecodeBookings decodes the array returned by the booking list endpoints.
// The first invalid element fails the whole list.
func DecodeBookings(data []byte) ([]models.Booking, error) {
	if k := kindOf(data); k != kindArray {
		return nil, newDecodeError("", "expected array of bookings, got %s", k)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, newDecodeError("", "malformed array: %v", err)
	}

	bookings := make([]models.Booking, 0, len(elems))
	for i, elem := range elems {
		prefix := index("", i)
		obj, err := splitObject(prefix, elem)
		if err != nil {
			return nil, err
		}
		b, err := decodeBooking(prefix, obj)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func decodeBooking(prefix string, obj map[string]json.RawMessage) (models.Booking, error) {
	field := func(key string) string { return join(prefix, key) }

	id, err := requireNonEmpty(obj, keyID, field(keyID))
	if err != nil {
		return models.Booking{}, err
	}
	pickup, err := requireNonEmpty(obj, keyPickupLocation, field(keyPickupLocation))
	if err != nil {
		return models.Booking{}, err
	}
	destination, err := requireNonEmpty(obj, keyDestination, field(keyDestination))
	if err != nil {
		return models.Booking{}, err
	}
	passengers, err := decodePassengerCount(obj, field(keyNoPassengers))
	if err != nil {
		return models.Booking{}, err
	}
	status, err := decodeStatus(obj, field(keyStatus))
	if err != nil {
		return models.Booking{}, err
	}
	notes, err := decodeNotes(obj, field(keyNotes))
	if err != nil {
		return models.Booking{}, err
	}

	customer, err := DecodeUserRef(field(keyCustomer), obj[keyCustomer])
	if err != nil {
		return models.Booking{}, err
	}
	if customer == nil {
		return models.Booking{}, newDecodeError(field(keyCustomer), "missing required field")
	}
	driver, err := DecodeUserRef(field(keyDriver), obj[keyDriver])
	if err != nil {
		return models.Booking{}, err
	}

	company, err := decodeCompany(obj, field(keyCompany))
	if err != nil {
		return models.Booking{}, err
	}
	scheduled, err := decodeTime(obj, keyTime, field(keyTime))
	if err != nil {
		return models.Booking{}, err
	}
	createdAt, err := decodeTime(obj, keyCreatedAt, field(keyCreatedAt))
	if err != nil {
		return models.Booking{}, err
	}

	return models.Booking{
		ID:             id,
		PickupLocation: pickup,
		Destination:    destination,
		ScheduledTime:  scheduled,
		PassengerCount: passengers,
		Notes:          notes,
		Status:         status,
		Customer:       *customer,
		Driver:         driver,
		Company:        company,
		CreatedAt:      createdAt,
	}, nil
}

func decodePassengerCount(obj map[string]json.RawMessage, field string) (int, error) {
	raw, ok := present(obj, keyNoPassengers)
	if !ok {
		return 0, newDecodeError(field, "missing required field")
	}
	if k := kindOf(raw); k != kindNumber {
		return 0, newDecodeError(field, "expected number, got %s", k)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, newDecodeError(field, "malformed number: %v", err)
	}

	v, ok := WholeNumber(n)
	if !ok {
		return 0, newDecodeError(field, "expected integer, got %s", n.String())
	}
	if v <= 0 {
		return 0, newDecodeError(field, "must be positive, got %d", v)
	}
	return int(v), nil
}

func decodeStatus(obj map[string]json.RawMessage, field string) (models.BookingStatus, error) {
	s, err := requireString(obj, keyStatus, field)
	if err != nil {
		return "", err
	}
	status, ok := models.ParseBookingStatus(s)
	if !ok {
		return "", newDecodeError(field, "unknown booking status %q", s)
	}
	return status, nil
}

// decodeNotes accepts a missing key, a single string or an array of strings
func decodeNotes(obj map[string]json.RawMessage, field string) ([]string, error) {
	raw, ok := present(obj, keyNotes)
	if !ok {
		return []string{}, nil
	}
	return decodeStrings(field, raw)
}

// decodeCompany accepts the company id or a populated company object
func decodeCompany(obj map[string]json.RawMessage, field string) (string, error) {
	raw, ok := present(obj, keyCompany)
	if !ok {
		return "", nil
	}
	switch k := kindOf(raw); k {
	case kindString:
		return decodeString(field, raw)
	case kindObject:
		nested, err := splitObject(field, raw)
		if err != nil {
			return "", err
		}
		return requireNonEmpty(nested, keyID, join(field, keyID))
	default:
		return "", newDecodeError(field, "expected string or object, got %s", k)
	}
}

func decodeTime(obj map[string]json.RawMessage, key, field string) (time.Time, error) {
	s, err := requireString(obj, key, field)
	if err != nil {
		return time.Time{}, err
	}
	t, err := models.ParseTime(s)
	if err != nil {
		return time.Time{}, newDecodeError(field, "unparseable timestamp %q", s)
	}
	return t, nil
}
