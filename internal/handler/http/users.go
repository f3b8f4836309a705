// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/apperror"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/query"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

// usersData is the "data" member of list responses. Users is never omitted:
// a page past the end renders as an empty list.
type usersData struct {
	Users []models.Document `json:"users"`
}

type userData struct {
	User models.User `json:"user"`
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	spec := query.NewTranslator(query.Spec{}, query.ParseValues(r.URL.Query()), h.queryOptions).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Spec()

	list, err := h.services.UserService.ListUsers(ctx, spec)
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg("listing users failed")
		h.writeError(w, r, err)
		return
	}

	results := len(list.Users)
	requestedAt, _ := utils.GetRequestTimeFromContext(ctx)
	h.respond(w, r, models.Response{
		Status:      models.StatusSuccess,
		Results:     &results,
		Total:       &list.Total,
		RequestedAt: requestedAt,
		Data:        usersData{Users: list.Users},
	}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, bodyReadError(err))
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creating user failed")
		h.writeError(w, r, err)
		return
	}

	h.respond(w, r, models.Response{
		Status: models.StatusSuccess,
		Data:   userData{User: user},
	}, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respond(w, r, models.Response{
		Status: models.StatusSuccess,
		Data:   userData{User: user},
	}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err = utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, bodyReadError(err))
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, req)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("user_id", id).Msg("updating user failed")
		h.writeError(w, r, err)
		return
	}

	h.respond(w, r, models.Response{
		Status: models.StatusSuccess,
		Data:   userData{User: user},
	}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Int64("user_id", id).Msg("deleting user failed")
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.Wrap(err, app.MsgInvalidID+raw, http.StatusBadRequest)
	}
	return id, nil
}
