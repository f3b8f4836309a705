package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationInvalidUserID   = errors.New("invalid user ID")
	ErrValidationNothingToUpdate = errors.New("no fields to update were given")

	ErrHashingPassword = errors.New("failed to hash password")
)
