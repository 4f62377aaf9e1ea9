package users

import (
	"context"

	"github.com/piresc/taxe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/taxe/services/users UserUC

// UserUC is the account side of the client: signing in and out and keeping the
// cached profile in step with the server
type UserUC interface {
	Login(ctx context.Context, creds models.LoginRequest) (*models.UserProfile, error)
	Register(ctx context.Context, user models.NewUser) (*models.APIResponse, error)
	Logout(ctx context.Context) error

	// profile
	Profile(ctx context.Context) (*models.UserProfile, error)
	EditProfile(ctx context.Context, update models.UserUpdate) (*models.APIResponse, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (*models.APIResponse, error)
	SetAvailability(ctx context.Context, available bool) (*models.APIResponse, error)

	// drivers only
	ResignFromCompany(ctx context.Context) (*models.APIResponse, error)
}
