// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/apperror"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

// errorDetails is the "error" member of development error responses.
type errorDetails struct {
	StatusCode    int    `json:"statusCode"`
	Status        string `json:"status"`
	IsOperational bool   `json:"isOperational"`
	Cause         string `json:"cause,omitempty"`
}

// writeError renders err as the JSON error envelope.
//
// In development the response carries the full error and the stack trace.
// In production operational errors expose only their message; any other error
// is logged and answered with a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	appErr := toAppError(err)

	if h.development {
		details := errorDetails{
			StatusCode:    appErr.StatusCode,
			Status:        appErr.Status,
			IsOperational: appErr.IsOperational,
		}
		if cause := appErr.Unwrap(); cause != nil {
			details.Cause = cause.Error()
		}

		log.Debug().Err(err).Int("status", appErr.StatusCode).Msg("request failed")
		h.respond(w, r, models.Response{
			Status:  appErr.Status,
			Message: appErr.Message,
			Error:   details,
			Stack:   appErr.Stack(),
		}, appErr.StatusCode)
		return
	}

	if appErr.IsOperational {
		h.respond(w, r, models.Response{
			Status:  appErr.Status,
			Message: appErr.Message,
		}, appErr.StatusCode)
		return
	}

	log.Error().Err(err).Msg("unexpected error")
	h.respond(w, r, models.Response{
		Status:  apperror.StatusError,
		Message: app.MsgSomethingWentWrong,
	}, http.StatusInternalServerError)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, resp models.Response, statusCode int) {
	if _, err := utils.WriteJSON(w, resp, statusCode); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, apperror.New(fmt.Sprintf(app.MsgRouteNotFoundFormat, r.URL.RequestURI()), http.StatusNotFound))
}
