package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/query"
	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

// UserValidationService checks identifiers and request bodies before they
// reach the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

// ListUsers is passed through: query specs are checked against the
// resource's fields by the store.
func (v *UserValidationService) ListUsers(ctx context.Context, spec query.Spec) (models.UserList, error) {
	return v.inner.ListUsers(ctx, spec)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrValidationInvalidUserID
	}
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateUser(ctx, req)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrValidationInvalidUserID
	}
	if req.IsEmpty() {
		return models.User{}, ErrValidationNothingToUpdate
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateUser(ctx, id, req)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrValidationInvalidUserID
	}
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
