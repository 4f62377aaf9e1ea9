package decoder

import (
	"encoding/json"

	"github.com/piresc/taxe/internal/pkg/models"
)

// DecodeUserRef resolves a polymorphic user reference found under field.
//   - nil or JSON null: no reference (nil, nil)
//   - JSON string: shallow reference holding only the id
//   - JSON object: full reference with a decoded profile
//
// Any other JSON type is a DecodeError.
func DecodeUserRef(field string, raw json.RawMessage) (*models.UserRef, error) {
	if raw == nil {
		return nil, nil
	}
	switch k := kindOf(raw); k {
	case kindNull:
		return nil, nil
	case kindString:
		id, err := decodeString(field, raw)
		if err != nil {
			return nil, err
		}
		if id == "" {
			return nil, newDecodeError(field, "must not be empty")
		}
		ref := models.ShallowRef(id)
		return &ref, nil
	case kindObject:
		obj, err := splitObject(field, raw)
		if err != nil {
			return nil, err
		}
		p, err := decodeProfile(field, obj)
		if err != nil {
			return nil, err
		}
		ref := models.FullRef(p)
		return &ref, nil
	default:
		return nil, newDecodeError(field, "expected user id or user object, got %s", k)
	}
}

// DecodeUserProfile decodes the user object served by GET users/{id}
func DecodeUserProfile(data []byte) (models.UserProfile, error) {
	obj, err := splitObject("", data)
	if err != nil {
		return models.UserProfile{}, err
	}
	return decodeProfile("", obj)
}

// DecodeLogin decodes the users/login payload. The token is required and the
// remaining members must form a valid user profile.
func DecodeLogin(data []byte) (models.LoginResponse, error) {
	obj, err := splitObject("", data)
	if err != nil {
		return models.LoginResponse{}, err
	}
	token, err := requireNonEmpty(obj, keyToken, keyToken)
	if err != nil {
		return models.LoginResponse{}, err
	}
	p, err := decodeProfile("", obj)
	if err != nil {
		return models.LoginResponse{}, err
	}
	return models.LoginResponse{Token: token, User: p}, nil
}

// decodeProfile reads the fields the client uses; anything else is ignored
func decodeProfile(prefix string, obj map[string]json.RawMessage) (models.UserProfile, error) {
	field := func(key string) string { return join(prefix, key) }

	id, err := requireNonEmpty(obj, keyID, field(keyID))
	if err != nil {
		return models.UserProfile{}, err
	}
	name, err := requireString(obj, keyName, field(keyName))
	if err != nil {
		return models.UserProfile{}, err
	}
	email, err := requireString(obj, keyEmail, field(keyEmail))
	if err != nil {
		return models.UserProfile{}, err
	}
	role, err := requireString(obj, keyRole, field(keyRole))
	if err != nil {
		return models.UserProfile{}, err
	}
	company, err := decodeCompany(obj, field(keyCompany))
	if err != nil {
		return models.UserProfile{}, err
	}

	var available bool
	if raw, ok := present(obj, keyAvailable); ok {
		if k := kindOf(raw); k != kindBool {
			return models.UserProfile{}, newDecodeError(field(keyAvailable), "expected boolean, got %s", k)
		}
		if err := json.Unmarshal(raw, &available); err != nil {
			return models.UserProfile{}, newDecodeError(field(keyAvailable), "malformed boolean: %v", err)
		}
	}

	bookings, err := decodeBookingIDs(obj, field(keyBookings))
	if err != nil {
		return models.UserProfile{}, err
	}

	p := models.UserProfile{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      models.Role(role),
		Company:   company,
		Available: available,
		Bookings:  bookings,
	}
	if _, ok := present(obj, keyCreatedAt); ok {
		if p.CreatedAt, err = decodeTime(obj, keyCreatedAt, field(keyCreatedAt)); err != nil {
			return models.UserProfile{}, err
		}
	}
	return p, nil
}

// decodeBookingIDs reads the user's booking list, which holds ids or, when the
// server populated it, booking objects from which only the id is kept
func decodeBookingIDs(obj map[string]json.RawMessage, field string) ([]string, error) {
	raw, ok := present(obj, keyBookings)
	if !ok {
		return nil, nil
	}
	if k := kindOf(raw); k != kindArray {
		return nil, newDecodeError(field, "expected array, got %s", k)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, newDecodeError(field, "malformed array: %v", err)
	}

	ids := make([]string, 0, len(elems))
	for i, elem := range elems {
		elemField := index(field, i)
		switch k := kindOf(elem); k {
		case kindString:
			id, err := decodeString(elemField, elem)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		case kindObject:
			nested, err := splitObject(elemField, elem)
			if err != nil {
				return nil, err
			}
			id, err := requireNonEmpty(nested, keyID, join(elemField, keyID))
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		default:
			return nil, newDecodeError(elemField, "expected booking id or object, got %s", k)
		}
	}
	return ids, nil
}
