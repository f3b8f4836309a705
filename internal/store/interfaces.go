package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-users-api/internal/query"
	"github.com/MKhiriev/go-users-api/models"
)

// UserRepository persists and queries users. Every read ignores inactive
// (soft-deleted) users.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row with the
	// server-assigned ID, defaults and timestamps.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUsers executes spec and returns the projected documents of one page.
	FindUsers(ctx context.Context, spec query.Spec) ([]models.Document, error)

	// CountUsers returns the number of users matching filter across all pages.
	CountUsers(ctx context.Context, filter query.Predicate) (int64, error)

	FindUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UpdateUserRequest) (models.User, error)

	// DeactivateUser marks the user inactive.
	DeactivateUser(ctx context.Context, id int64) error
}

// ErrorClassificator decides how a driver error should be treated.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err was caused by a unique constraint.
	IsUniqueViolation(err error) bool
}
