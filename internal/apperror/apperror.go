// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperror defines the error type rendered by the HTTP layer.
//
// An operational error is an expected failure (bad input, missing resource)
// whose message is safe to show to clients. Any other error is a programming
// or infrastructure fault; in production its details are hidden.
package apperror

import (
	"errors"
	"net/http"
	"runtime/debug"
)

// Status values of an error response.
const (
	StatusFail  = "fail"
	StatusError = "error"
)

type AppError struct {
	Message       string
	StatusCode    int
	Status        string
	IsOperational bool

	cause error
	stack []byte
}

// New returns an operational error. Status is "fail" for 4xx codes and
// "error" otherwise.
func New(message string, statusCode int) *AppError {
	return &AppError{
		Message:       message,
		StatusCode:    statusCode,
		Status:        statusFor(statusCode),
		IsOperational: true,
		stack:         debug.Stack(),
	}
}

// Wrap returns an operational error that keeps cause for errors.Is/As.
func Wrap(cause error, message string, statusCode int) *AppError {
	e := New(message, statusCode)
	e.cause = cause
	return e
}

// Internal wraps an unexpected failure. It is never operational.
func Internal(cause error) *AppError {
	e := New(http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	e.IsOperational = false
	e.cause = cause
	if cause != nil {
		e.Message = cause.Error()
	}
	return e
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Stack returns the goroutine stack captured when the error was created.
func (e *AppError) Stack() string {
	return string(e.stack)
}

// As returns the first *AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func statusFor(statusCode int) string {
	if statusCode >= 400 && statusCode < 500 {
		return StatusFail
	}
	return StatusError
}
