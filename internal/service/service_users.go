// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/query"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

type userService struct {
	userRepository store.UserRepository
	hashCost       int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hashCost:       bcrypt.DefaultCost,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, spec query.Spec) (models.UserList, error) {
	users, err := s.userRepository.FindUsers(ctx, spec)
	if err != nil {
		return models.UserList{}, err
	}

	total, err := s.userRepository.CountUsers(ctx, spec.Filter)
	if err != nil {
		return models.UserList{}, err
	}

	return models.UserList{Users: users, Total: total}, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

// CreateUser hashes the password and stores the user. Role and photo fall
// back to their defaults when omitted.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Photo:    req.Photo,
		Password: string(hash),
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Photo == "" {
		user.Photo = models.DefaultPhoto
	}

	return s.userRepository.CreateUser(ctx, user)
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	return s.userRepository.UpdateUser(ctx, id, req)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepository.DeactivateUser(ctx, id)
}
