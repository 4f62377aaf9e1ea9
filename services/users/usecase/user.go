package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/taxe/internal/pkg/apierror"
	"github.com/piresc/taxe/internal/pkg/logger"
	"github.com/piresc/taxe/internal/pkg/models"
	"github.com/piresc/taxe/internal/pkg/validation"
)

// ErrNoCompany is returned when a driver with no company tries to resign
var ErrNoCompany = errors.New("user does not belong to a company")

// Login signs in and caches the token and profile
func (u *UserUC) Login(ctx context.Context, creds models.LoginRequest) (*models.UserProfile, error) {
	if err := validation.Validate(creds); err != nil {
		return nil, err
	}

	resp, err := u.userGW.Login(ctx, creds)
	if err != nil {
		return nil, u.classifier.Wrap(ctx, apierror.OpLogin, err)
	}

	profile := resp.User
	if err := u.store.PutToken(ctx, resp.Token); err != nil {
		return nil, fmt.Errorf("failed to save session token: %w", err)
	}
	if err := u.store.PutUser(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save session user: %w", err)
	}

	logger.Info("User signed in",
		logger.String("user_id", profile.ID),
		logger.String("role", string(profile.Role)))
	return &profile, nil
}

// Register creates an account; it does not sign in
func (u *UserUC) Register(ctx context.Context, user models.NewUser) (*models.APIResponse, error) {
	if err := validation.Validate(user); err != nil {
		return nil, err
	}

	resp, err := u.userGW.Register(ctx, user)
	if err != nil {
		return nil, u.classifier.Wrap(ctx, apierror.OpRegister, err)
	}
	return resp, nil
}

// Logout clears the local session; signing out twice is fine
func (u *UserUC) Logout(ctx context.Context) error {
	if err := u.store.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Profile fetches the signed-in user's profile and refreshes the cached copy
func (u *UserUC) Profile(ctx context.Context) (*models.UserProfile, error) {
	token, user, err := u.signedIn(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.userGW.GetUser(ctx, token, user.ID)
	if err != nil {
		return nil, u.classifier.Wrap(ctx, apierror.OpGetUser, err)
	}

	if err := u.store.PutUser(ctx, profile); err != nil {
		logger.Warn("Failed to refresh cached profile", logger.String("user_id", profile.ID), logger.Err(err))
	}
	return &profile, nil
}

// EditProfile sends the non-empty fields of update
func (u *UserUC) EditProfile(ctx context.Context, update models.UserUpdate) (*models.APIResponse, error) {
	if err := validation.Validate(update); err != nil {
		return nil, err
	}

	token, user, err := u.signedIn(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := u.userGW.EditUser(ctx, token, user.ID, update)
	if err != nil {
		return nil, u.classifier.Wrap(ctx, apierror.OpEditUser, err)
	}

	updated := *user
	if update.Name != "" {
		updated.Name = update.Name
	}
	if update.Email != "" {
		updated.Email = update.Email
	}
	if update.Available != nil {
		updated.Available = *update.Available
	}
	if err := u.store.PutUser(ctx, updated); err != nil {
		logger.Warn("Failed to refresh cached profile", logger.String("user_id", user.ID), logger.Err(err))
	}
	return resp, nil
}

func (u *UserUC) ChangePassword(ctx context.Context, oldPassword, newPassword string) (*models.APIResponse, error) {
	return u.EditProfile(ctx, models.UserUpdate{Password: newPassword, OldPassword: oldPassword})
}

// SetAvailability toggles whether a driver can be assigned bookings
func (u *UserUC) SetAvailability(ctx context.Context, available bool) (*models.APIResponse, error) {
	return u.EditProfile(ctx, models.UserUpdate{Available: &available})
}

// ResignFromCompany removes the signed-in driver from their company
func (u *UserUC) ResignFromCompany(ctx context.Context) (*models.APIResponse, error) {
	token, user, err := u.signedIn(ctx)
	if err != nil {
		return nil, err
	}
	if user.Company == "" {
		return nil, ErrNoCompany
	}

	resp, err := u.userGW.RemoveDriver(ctx, token, user.Company, user.ID)
	if err != nil {
		return nil, u.classifier.Wrap(ctx, apierror.OpRemoveDriver, err)
	}

	updated := *user
	updated.Company = ""
	if err := u.store.PutUser(ctx, updated); err != nil {
		logger.Warn("Failed to refresh cached profile", logger.String("user_id", user.ID), logger.Err(err))
	}
	return resp, nil
}

// signedIn loads the token and cached user, or fails with session.ErrNoToken /
// session.ErrNoUser
func (u *UserUC) signedIn(ctx context.Context) (string, *models.UserProfile, error) {
	token, err := u.store.Token(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load session: %w", err)
	}
	user, err := u.store.User(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load session: %w", err)
	}
	return token, user, nil
}
