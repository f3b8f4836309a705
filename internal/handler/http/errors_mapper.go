package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/apperror"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrValidationInvalidUserID:   http.StatusBadRequest,
	service.ErrValidationNothingToUpdate: http.StatusBadRequest,
	service.ErrHashingPassword:           http.StatusInternalServerError,

	store.ErrUnknownField:        http.StatusBadRequest,
	store.ErrUnsupportedOperator: http.StatusBadRequest,
	store.ErrInvalidFilterValue:  http.StatusBadRequest,
	store.ErrUserNotFound:        http.StatusNotFound,
	store.ErrEmailAlreadyExists:  http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// toAppError converts any error returned by the service layer into an
// [apperror.AppError]. Client errors become operational, everything else is
// treated as an internal failure.
func toAppError(err error) *apperror.AppError {
	if appErr, ok := apperror.As(err); ok {
		return appErr
	}

	status := statusFromError(err)
	if status < http.StatusInternalServerError {
		return apperror.Wrap(err, err.Error(), status)
	}
	return apperror.Internal(err)
}
