package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/taxe/internal/pkg/apierror"
	"github.com/piresc/taxe/internal/pkg/decoder"
	"github.com/piresc/taxe/internal/pkg/logger"
	"github.com/piresc/taxe/internal/pkg/models"
	"github.com/piresc/taxe/internal/pkg/session"
	"github.com/piresc/taxe/internal/pkg/validation"
	"github.com/piresc/taxe/services/users/mocks"
)

func apiFailure(body string) error {
	return &apierror.HTTPError{StatusCode: 400, Body: []byte(body)}
}

func setup(t *testing.T) (*UserUC, *mocks.MockUserGW, *session.MemoryStore) {
	ctrl := gomock.NewController(t)
	mockGW := mocks.NewMockUserGW(ctrl)
	store := session.NewMemoryStore()
	uc := NewUserUC(mockGW, store, apierror.NewClassifier(store, logger.NewNop()))
	return uc, mockGW, store
}

func signIn(t *testing.T, store *session.MemoryStore, user models.UserProfile) {
	t.Helper()
	require.NoError(t, store.PutToken(context.Background(), "token-1"))
	require.NoError(t, store.PutUser(context.Background(), user))
}

func TestLogin_Success(t *testing.T) {
	uc, mockGW, store := setup(t)
	ctx := context.Background()
	creds := models.LoginRequest{Email: "ada@example.com", Password: "engine1843"}

	mockGW.EXPECT().Login(gomock.Any(), creds).Return(&models.LoginResponse{
		Token: "token-1",
		User: models.UserProfile{
			ID:        "u1",
			Name:      "Ada Lovelace",
			Email:     "ada@example.com",
			Role:      models.RoleCustomer,
			CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		},
	}, nil)

	profile, err := uc.Login(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, 2024, profile.CreatedAt.Year())

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	cached, err := store.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", cached.Name)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	uc, mockGW, store := setup(t)
	creds := models.LoginRequest{Email: "ada@example.com", Password: "wrong"}

	mockGW.EXPECT().Login(gomock.Any(), creds).Return(nil, apiFailure(`{"code":6,"message":"Invalid credentials"}`))

	profile, err := uc.Login(context.Background(), creds)

	assert.Nil(t, profile)
	res, ok := apierror.AsResult(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindCredentialsRejected, res.Kind)
	assert.Equal(t, apierror.ActionMarkCredentials, res.Action)
	assert.Equal(t, []string{"email", "password"}, res.InvalidFields)
	assert.False(t, store.IsValid(context.Background()))
}

func TestLogin_InvalidInputNeverCallsAPI(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.Login(context.Background(), models.LoginRequest{Email: "not-an-email"})

	ve, ok := validation.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email", "password"}, ve.Fields())
}

func TestLogin_MalformedResponse(t *testing.T) {
	uc, mockGW, _ := setup(t)
	creds := models.LoginRequest{Email: "ada@example.com", Password: "engine1843"}

	mockGW.EXPECT().Login(gomock.Any(), creds).Return(nil, &decoder.DecodeError{Field: "token", Reason: "missing"})

	_, err := uc.Login(context.Background(), creds)

	var decodeErr *decoder.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	_, classified := apierror.AsResult(err)
	assert.False(t, classified)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name      string
		user      models.NewUser
		setupMock func(gw *mocks.MockUserGW)
		wantKind  apierror.Kind
		wantErr   bool
	}{
		{
			name: "success",
			user: models.NewUser{Name: "Ada Lovelace", Email: "ada@example.com", Password: "engine1843"},
			setupMock: func(gw *mocks.MockUserGW) {
				gw.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&models.APIResponse{Message: "User created"}, nil)
			},
		},
		{
			name: "email taken",
			user: models.NewUser{Name: "Ada Lovelace", Email: "ada@example.com", Password: "engine1843"},
			setupMock: func(gw *mocks.MockUserGW) {
				gw.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apiFailure(`{"code":5,"message":"exists"}`))
			},
			wantKind: apierror.KindDomainRejected,
			wantErr:  true,
		},
		{
			name:      "weak password",
			user:      models.NewUser{Name: "Ada Lovelace", Email: "ada@example.com", Password: "short"},
			setupMock: func(gw *mocks.MockUserGW) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockGW, _ := setup(t)
			tt.setupMock(mockGW)

			resp, err := uc.Register(context.Background(), tt.user)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "User created", resp.Message)
				return
			}
			require.Error(t, err)
			if tt.wantKind != "" {
				assert.True(t, apierror.IsKind(err, tt.wantKind))
			}
		})
	}
}

func TestProfile_ExpiredSessionIsCleared(t *testing.T) {
	uc, mockGW, store := setup(t)
	signIn(t, store, models.UserProfile{ID: "u1", Name: "Ada Lovelace"})

	mockGW.EXPECT().GetUser(gomock.Any(), "token-1", "u1").Return(models.UserProfile{}, apiFailure(`{"code":2,"message":"expired"}`))

	_, err := uc.Profile(context.Background())

	res, ok := apierror.AsResult(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindSessionInvalid, res.Kind)
	assert.True(t, res.SessionInvalidated)
	assert.False(t, store.IsValid(context.Background()))
	assert.Equal(t, 1, store.Invalidations())
}

func TestProfile_RefreshesCache(t *testing.T) {
	uc, mockGW, store := setup(t)
	signIn(t, store, models.UserProfile{ID: "u1", Name: "Old Name"})

	mockGW.EXPECT().GetUser(gomock.Any(), "token-1", "u1").Return(models.UserProfile{ID: "u1", Name: "New Name"}, nil)

	profile, err := uc.Profile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "New Name", profile.Name)
	cached, _ := store.User(context.Background())
	assert.Equal(t, "New Name", cached.Name)
}

func TestProfile_NotSignedIn(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.Profile(context.Background())

	assert.ErrorIs(t, err, session.ErrNoToken)
}

func TestEditProfile(t *testing.T) {
	uc, mockGW, store := setup(t)
	signIn(t, store, models.UserProfile{ID: "u1", Name: "Ada Lovelace", Email: "ada@example.com", Role: models.RoleDriver})

	update := models.UserUpdate{Name: "Ada King"}
	mockGW.EXPECT().EditUser(gomock.Any(), "token-1", "u1", update).Return(&models.APIResponse{Message: "User updated"}, nil)

	resp, err := uc.EditProfile(context.Background(), update)

	require.NoError(t, err)
	assert.Equal(t, "User updated", resp.Message)
	cached, _ := store.User(context.Background())
	assert.Equal(t, "Ada King", cached.Name)
	assert.Equal(t, "ada@example.com", cached.Email)
}

func TestChangePassword(t *testing.T) {
	uc, mockGW, store := setup(t)
	signIn(t, store, models.UserProfile{ID: "u1"})

	mockGW.EXPECT().
		EditUser(gomock.Any(), "token-1", "u1", models.UserUpdate{Password: "newsecret99", OldPassword: "engine1843"}).
		Return(nil, apiFailure(`{"code":6,"message":"wrong password"}`))

	_, err := uc.ChangePassword(context.Background(), "engine1843", "newsecret99")

	res, ok := apierror.AsResult(err)
	require.True(t, ok)
	assert.Equal(t, apierror.KindCredentialsRejected, res.Kind)
	assert.Equal(t, apierror.ActionShowMessage, res.Action)
	assert.Empty(t, res.InvalidFields)
	assert.True(t, store.IsValid(context.Background()))
}

func TestSetAvailability(t *testing.T) {
	uc, mockGW, store := setup(t)
	signIn(t, store, models.UserProfile{ID: "u1", Role: models.RoleDriver})

	mockGW.EXPECT().EditUser(gomock.Any(), "token-1", "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, update models.UserUpdate) (*models.APIResponse, error) {
			require.NotNil(t, update.Available)
			assert.True(t, *update.Available)
			return &models.APIResponse{Message: "ok"}, nil
		})

	_, err := uc.SetAvailability(context.Background(), true)

	require.NoError(t, err)
	cached, _ := store.User(context.Background())
	assert.True(t, cached.Available)
}

func TestResignFromCompany(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, mockGW, store := setup(t)
		signIn(t, store, models.UserProfile{ID: "u1", Role: models.RoleDriver, Company: "c1"})

		mockGW.EXPECT().RemoveDriver(gomock.Any(), "token-1", "c1", "u1").Return(&models.APIResponse{Message: "removed"}, nil)

		_, err := uc.ResignFromCompany(context.Background())

		require.NoError(t, err)
		cached, _ := store.User(context.Background())
		assert.Empty(t, cached.Company)
	})

	t.Run("no company", func(t *testing.T) {
		uc, _, store := setup(t)
		signIn(t, store, models.UserProfile{ID: "u1", Role: models.RoleDriver})

		_, err := uc.ResignFromCompany(context.Background())

		assert.ErrorIs(t, err, ErrNoCompany)
	})

	t.Run("company not found", func(t *testing.T) {
		uc, mockGW, store := setup(t)
		signIn(t, store, models.UserProfile{ID: "u1", Role: models.RoleDriver, Company: "c1"})

		mockGW.EXPECT().RemoveDriver(gomock.Any(), "token-1", "c1", "u1").Return(nil, apiFailure(`{"code":15,"message":"no company"}`))

		_, err := uc.ResignFromCompany(context.Background())

		assert.True(t, apierror.IsKind(err, apierror.KindDomainRejected))
		cached, _ := store.User(context.Background())
		assert.Equal(t, "c1", cached.Company)
	})
}

func TestLogout(t *testing.T) {
	uc, _, store := setup(t)
	signIn(t, store, models.UserProfile{ID: "u1"})

	require.NoError(t, uc.Logout(context.Background()))
	require.NoError(t, uc.Logout(context.Background()))

	assert.False(t, store.IsValid(context.Background()))
	assert.Equal(t, 1, store.Invalidations())
}
