package usecase

import (
	"github.com/piresc/taxe/internal/pkg/apierror"
	"github.com/piresc/taxe/internal/pkg/session"
	"github.com/piresc/taxe/services/users"
)

type UserUC struct {
	userGW     users.UserGW
	store      session.Store
	classifier *apierror.Classifier
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userGW users.UserGW,
	store session.Store,
	classifier *apierror.Classifier,
) *UserUC {
	return &UserUC{
		userGW:     userGW,
		store:      store,
		classifier: classifier,
	}
}
