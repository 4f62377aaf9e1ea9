package models

import (
	"time"
)

// Role is the role a user holds in the taxe system
type Role string

const (
	RoleCustomer     Role = "Customer"
	RoleDriver       Role = "Driver"
	RoleCompanyAdmin Role = "Company_Admin"
)

// UserProfile is a fully populated user as returned by the user detail endpoint
// or embedded in a booking.
type UserProfile struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	Company   string
	Available bool
	Bookings  []string
	CreatedAt time.Time
}

// UserRef references a user. On the wire it is either a bare id (shallow) or a
// nested user object (full); both are represented here.
// The zero value is not a valid reference.
type UserRef struct {
	id      string
	profile *UserProfile
}

// ShallowRef builds a reference that only knows the user id
func ShallowRef(id string) UserRef {
	return UserRef{id: id}
}

// FullRef builds a reference carrying a complete profile
func FullRef(p UserProfile) UserRef {
	p.Bookings = append([]string(nil), p.Bookings...)
	return UserRef{id: p.ID, profile: &p}
}

// ID is available on both variants
func (r UserRef) ID() string {
	return r.id
}

// IsFull reports whether profile data was provided
func (r UserRef) IsFull() bool {
	return r.profile != nil
}

// Profile returns a copy of the embedded profile. ok is false for shallow
// references, which callers should treat as "not yet loaded".
func (r UserRef) Profile() (p UserProfile, ok bool) {
	if r.profile == nil {
		return UserProfile{}, false
	}
	p = *r.profile
	p.Bookings = append([]string(nil), r.profile.Bookings...)
	return p, true
}

// Name returns the user's name, or "" when only a shallow reference is known
func (r UserRef) Name() string {
	if r.profile == nil {
		return ""
	}
	return r.profile.Name
}

// Equal compares two references by id and, when both are full, by profile
func (r UserRef) Equal(o UserRef) bool {
	if r.id != o.id || r.IsFull() != o.IsFull() {
		return false
	}
	if !r.IsFull() {
		return true
	}
	a, b := *r.profile, *o.profile
	if len(a.Bookings) != len(b.Bookings) {
		return false
	}
	for i := range a.Bookings {
		if a.Bookings[i] != b.Bookings[i] {
			return false
		}
	}
	return a.Name == b.Name && a.Email == b.Email && a.Role == b.Role &&
		a.Company == b.Company && a.Available == b.Available && a.CreatedAt.Equal(b.CreatedAt)
}

// NewUser is the payload for registering an account
type NewUser struct {
	Name     string `json:"name" validate:"required,taxe_name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,taxe_password"`
}

// UserUpdate is the payload for editing an account. Empty fields are not sent.
type UserUpdate struct {
	Name        string `json:"name,omitempty" validate:"omitempty,taxe_name"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Password    string `json:"password,omitempty" validate:"omitempty,taxe_password"`
	OldPassword string `json:"old_password,omitempty" validate:"required_with=Password"`
	Available   *bool  `json:"available,omitempty"`
}

// LoginRequest holds the credentials sent as Basic auth to users/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
