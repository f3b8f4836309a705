package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/apperror"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", fmt.Errorf("%w: name is required", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"invalid user id", service.ErrValidationInvalidUserID, http.StatusBadRequest},
		{"nothing to update", service.ErrValidationNothingToUpdate, http.StatusBadRequest},
		{"unknown field", fmt.Errorf("%w: foo", store.ErrUnknownField), http.StatusBadRequest},
		{"unsupported operator", store.ErrUnsupportedOperator, http.StatusBadRequest},
		{"invalid filter value", store.ErrInvalidFilterValue, http.StatusBadRequest},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"hashing", service.ErrHashingPassword, http.StatusInternalServerError},
		{"scan", fmt.Errorf("%w: %w", store.ErrScanningRows, errors.New("bad column")), http.StatusInternalServerError},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestToAppError(t *testing.T) {
	t.Run("app error is kept", func(t *testing.T) {
		orig := apperror.New("teapot", http.StatusTeapot)
		assert.Same(t, orig, toAppError(fmt.Errorf("wrapped: %w", orig)))
	})

	t.Run("client error becomes operational", func(t *testing.T) {
		appErr := toAppError(store.ErrUserNotFound)
		assert.True(t, appErr.IsOperational)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
		assert.Equal(t, apperror.StatusFail, appErr.Status)
		assert.ErrorIs(t, appErr, store.ErrUserNotFound)
	})

	t.Run("server error is internal", func(t *testing.T) {
		appErr := toAppError(store.ErrExecutingQuery)
		assert.False(t, appErr.IsOperational)
		assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
		assert.Equal(t, apperror.StatusError, appErr.Status)
	})
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		err         error
		wantStatus  int
		wantMessage string
		wantStack   bool
	}{
		{
			name:        "production operational",
			err:         apperror.New("Invalid id", http.StatusBadRequest),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid id",
		},
		{
			name:        "production programming error",
			err:         errors.New("nil pointer somewhere"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgSomethingWentWrong,
		},
		{
			name:        "development operational",
			development: true,
			err:         apperror.New("Invalid id", http.StatusBadRequest),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid id",
			wantStack:   true,
		},
		{
			name:        "development programming error",
			development: true,
			err:         errors.New("nil pointer somewhere"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "nil pointer somewhere",
			wantStack:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.development = tt.development

			rec := httptest.NewRecorder()
			h.writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantMessage, body["message"])

			if tt.wantStack {
				assert.NotEmpty(t, body["stack"])
				assert.Contains(t, body, "error")
				return
			}
			assert.NotContains(t, body, "stack")
			assert.NotContains(t, body, "error")
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().notFound(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tours?x=1", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, models.StatusFail, body["status"])
	assert.Equal(t, "Can't find /api/v1/tours?x=1 on this server!", body["message"])
}
