package service

//go:generate mockgen -destination=../mock/user_service_mock.go -package=mock github.com/MKhiriev/go-users-api/internal/service UserService,AppInfoService

import (
	"context"

	"github.com/MKhiriev/go-users-api/internal/query"
	"github.com/MKhiriev/go-users-api/models"
)

// UserService manages user accounts.
type UserService interface {
	// ListUsers returns one page of users selected by spec together with the
	// total number of users matching spec.Filter.
	ListUsers(ctx context.Context, spec query.Spec) (models.UserList, error)

	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
