package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/taxe/internal/pkg/models"
)

func TestIsValidName(t *testing.T) {
	tests := map[string]bool{
		"Ada Lovelace": true,
		"Jean-Luc":     true,
		"Bob":          false,
		"R2D2 Robot":   false,
		"Ada_L":        false,
		"":             false,
	}
	for name, want := range tests {
		assert.Equal(t, want, IsValidName(name), name)
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := map[string]bool{
		"password12":   true,
		"123456789":    true,
		"password1":    true,
		"passwd12":     false,
		"no-digits-at": false,
	}
	for pw, want := range tests {
		assert.Equal(t, want, IsValidPassword(pw), pw)
	}
}

func TestValidate_NewUser(t *testing.T) {
	tests := []struct {
		name       string
		user       models.NewUser
		wantFields []string
	}{
		{
			name: "valid",
			user: models.NewUser{Name: "Ada Lovelace", Email: "ada@example.com", Password: "engine1843"},
		},
		{
			name:       "everything wrong",
			user:       models.NewUser{Name: "Al", Email: "not-an-email", Password: "short"},
			wantFields: []string{"name", "email", "password"},
		},
		{
			name:       "missing email",
			user:       models.NewUser{Name: "Ada Lovelace", Password: "engine1843"},
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.user)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			ve, ok := IsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantFields, ve.Fields())
		})
	}
}

func TestValidate_UserUpdate(t *testing.T) {
	assert.NoError(t, Validate(models.UserUpdate{}))
	assert.NoError(t, Validate(models.UserUpdate{Name: "Ada Lovelace"}))

	err := Validate(models.UserUpdate{Password: "newsecret99"})
	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"old_password"}, ve.Fields())
	assert.Equal(t, "required_with", ve.Errors[0].Tag)

	assert.NoError(t, Validate(models.UserUpdate{Password: "newsecret99", OldPassword: "whatever"}))
}

func TestValidate_BookingRequest(t *testing.T) {
	valid := models.BookingRequest{
		PickupLocation: "Main St",
		Destination:    "2nd Ave",
		Time:           "24-01-01T10:00:00.000Z",
		PassengerCount: 2,
	}
	assert.NoError(t, Validate(valid))

	withStatus := valid
	withStatus.Status = models.BookingStatusCancelled
	assert.NoError(t, Validate(withStatus))

	bad := models.BookingRequest{Time: "2024-01-01 10:00", Status: "Lost"}
	err := Validate(bad)
	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"pickup_location", "destination", "time", "no_passengers", "status"}, ve.Fields())
	assert.Contains(t, err.Error(), "time: Invalid time")
}

func TestIsValidationError(t *testing.T) {
	_, ok := IsValidationError(errors.New("other"))
	assert.False(t, ok)
	_, ok = IsValidationError(nil)
	assert.False(t, ok)
}
