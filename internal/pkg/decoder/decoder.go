// Package decoder turns raw taxe API payloads into typed models.
//
// The booking resource embeds its customer and driver either as a bare id or as a
// nested user object depending on which endpoint served it; the decoder inspects
// the JSON type of each value instead of relying on a discriminator. Decoding
// does no I/O and keeps no state, so it is safe to call from any goroutine.
package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Booking wire keys
const (
	keyID             = "_id"
	keyPickupLocation = "pickup_location"
	keyDestination    = "destination"
	keyTime           = "time"
	keyNoPassengers   = "no_passengers"
	keyNotes          = "notes"
	keyStatus         = "status"
	keyCustomer       = "customer"
	keyDriver         = "driver"
	keyCompany        = "company"
	keyCreatedAt      = "created_at"
)

// User wire keys
const (
	keyName      = "name"
	keyEmail     = "email"
	keyRole      = "role"
	keyAvailable = "available"
	keyBookings  = "bookings"
	keyToken     = "token"
)

// DecodeError reports a payload that violates the booking or user model.
// Field is a path such as "time", "customer.email", "notes[2]" or "[3].status".
type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return "decode: " + e.Reason
	}
	return fmt.Sprintf("decode %s: %s", e.Field, e.Reason)
}

func newDecodeError(field, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// jsonKind is the JSON type of a raw value, read from its first byte
type jsonKind int

const (
	kindInvalid jsonKind = iota
	kindNull
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

func (k jsonKind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindBool:
		return "boolean"
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	case kindArray:
		return "array"
	case kindObject:
		return "object"
	default:
		return "invalid JSON"
	}
}

func kindOf(raw json.RawMessage) jsonKind {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return kindInvalid
	}
	switch c := raw[0]; {
	case c == 'n':
		return kindNull
	case c == 't' || c == 'f':
		return kindBool
	case c == '"':
		return kindString
	case c == '[':
		return kindArray
	case c == '{':
		return kindObject
	case c == '-' || (c >= '0' && c <= '9'):
		return kindNumber
	default:
		return kindInvalid
	}
}

// join builds a nested field path
func join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func index(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

// splitObject decodes data into its top-level members
func splitObject(field string, data []byte) (map[string]json.RawMessage, error) {
	if k := kindOf(data); k != kindObject {
		return nil, newDecodeError(field, "expected object, got %s", k)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, newDecodeError(field, "malformed object: %v", err)
	}
	return obj, nil
}

// present returns the raw value for key, treating an explicit null like a missing key
func present(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := obj[key]
	if !ok || kindOf(raw) == kindNull {
		return nil, false
	}
	return raw, true
}

func decodeString(field string, raw json.RawMessage) (string, error) {
	if k := kindOf(raw); k != kindString {
		return "", newDecodeError(field, "expected string, got %s", k)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", newDecodeError(field, "malformed string: %v", err)
	}
	return s, nil
}

func requireString(obj map[string]json.RawMessage, key, field string) (string, error) {
	raw, ok := present(obj, key)
	if !ok {
		return "", newDecodeError(field, "missing required field")
	}
	return decodeString(field, raw)
}

func requireNonEmpty(obj map[string]json.RawMessage, key, field string) (string, error) {
	s, err := requireString(obj, key, field)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", newDecodeError(field, "must not be empty")
	}
	return s, nil
}

func optionalString(obj map[string]json.RawMessage, key, field string) (string, error) {
	raw, ok := present(obj, key)
	if !ok {
		return "", nil
	}
	return decodeString(field, raw)
}

// decodeStrings accepts a single string or an array of strings
func decodeStrings(field string, raw json.RawMessage) ([]string, error) {
	switch k := kindOf(raw); k {
	case kindString:
		s, err := decodeString(field, raw)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	case kindArray:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, newDecodeError(field, "malformed array: %v", err)
		}
		out := make([]string, 0, len(elems))
		for i, elem := range elems {
			s, err := decodeString(index(field, i), elem)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, newDecodeError(field, "expected string or array of strings, got %s", k)
	}
}

// WholeNumber reads n as an integer in the int32 range. A float with no
// fractional part, such as 2.0, counts as whole.
func WholeNumber(n json.Number) (int64, bool) {
	if v, err := n.Int64(); err == nil {
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return v, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int64(f), true
}
