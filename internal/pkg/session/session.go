// Package session holds the signed-in user's credentials between API calls.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/taxe/internal/pkg/models"
)

var (
	ErrNoToken         = errors.New("no session token stored")
	ErrNoUser          = errors.New("no session user stored")
	ErrNoActiveBooking = errors.New("no active booking stored")
)

// Invalidator is the part of the store the error classifier needs.
// Invalidate must be idempotent: clearing an already cleared session is a no-op.
type Invalidator interface {
	Invalidate(ctx context.Context) error
	IsValid(ctx context.Context) bool
}

// Store persists session state
type Store interface {
	Invalidator

	PutToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)

	PutUser(ctx context.Context, user models.UserProfile) error
	User(ctx context.Context) (*models.UserProfile, error)

	PutActiveBooking(ctx context.Context, bookingID string) error
	ActiveBooking(ctx context.Context) (string, error)
	DeleteActiveBooking(ctx context.Context) error
}

// TokenExpired reports whether token is a JWT whose exp claim lies before now.
// The signature is not checked since the client has no key; tokens that are not
// JWTs or carry no exp are left for the server to judge.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	return !claims.VerifyExpiresAt(now.Unix(), false)
}

// storedUser is the JSON shape of the cached profile
type storedUser struct {
	ID        string      `json:"_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Company   string      `json:"company,omitempty"`
	Available bool        `json:"available"`
	Bookings  []string    `json:"bookings,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func toStoredUser(p models.UserProfile) storedUser {
	return storedUser{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      p.Role,
		Company:   p.Company,
		Available: p.Available,
		Bookings:  append([]string(nil), p.Bookings...),
		CreatedAt: p.CreatedAt,
	}
}

func (u storedUser) profile() models.UserProfile {
	return models.UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Company:   u.Company,
		Available: u.Available,
		Bookings:  u.Bookings,
		CreatedAt: u.CreatedAt,
	}
}
