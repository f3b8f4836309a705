// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User roles.
const (
	RoleUser      = "user"
	RoleGuide     = "guide"
	RoleLeadGuide = "lead-guide"
	RoleAdmin     = "admin"
)

// DefaultPhoto is stored when a user is created without a photo.
const DefaultPhoto = "default.jpg"

// User represents an account stored in the "users" table.
// The password hash never leaves the persistence and service layers.
type User struct {
	// ID is the unique identifier assigned by the database.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// Role is one of RoleUser, RoleGuide, RoleLeadGuide or RoleAdmin.
	Role string `json:"role"`

	// Photo is the file name of the user's avatar.
	Photo string `json:"photo"`

	// Password holds the bcrypt hash of the user's password.
	Password string `json:"-"`

	// Active is false for deleted accounts. Inactive users are invisible to
	// every read operation.
	Active bool `json:"active"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// Version is incremented on every update. It is internal metadata and is
	// hidden from list responses by default.
	Version int64 `json:"version"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"omitempty,oneof=user guide lead-guide admin"`
	Photo           string `json:"photo" validate:"omitempty,max=255"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

// UpdateUserRequest is the body of PATCH /api/v1/users/{id}.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Role  *string `json:"role,omitempty" validate:"omitempty,oneof=user guide lead-guide admin"`
	Photo *string `json:"photo,omitempty" validate:"omitempty,max=255"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Role == nil && r.Photo == nil
}
