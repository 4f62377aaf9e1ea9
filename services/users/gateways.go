package users

import (
	"context"

	"github.com/piresc/taxe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/taxe/services/users UserGW

// UserGW defines the user endpoints of the taxe API
type UserGW interface {
	Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, user models.NewUser) (*models.APIResponse, error)
	GetUser(ctx context.Context, token, id string) (models.UserProfile, error)
	EditUser(ctx context.Context, token, id string, update models.UserUpdate) (*models.APIResponse, error)

	// company membership
	RemoveDriver(ctx context.Context, token, companyID, userID string) (*models.APIResponse, error)
}
