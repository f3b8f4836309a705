// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-users-api/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// engine returns the shared validator. Struct metadata is cached by the
// validator, so a single instance is reused for the whole process.
func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// report json names instead of Go field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// UserValidator validates user request bodies using their `validate` tags.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() Validator {
	return &UserValidator{validate: engine()}
}

// Validate checks models.CreateUserRequest and models.UpdateUserRequest
// (values or pointers). When fields are given only those struct fields are
// checked. Rule failures are returned wrapped in [ErrInvalidInput].
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.CreateUserRequest, *models.CreateUserRequest,
		models.UpdateUserRequest, *models.UpdateUserRequest:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return fmt.Errorf("%w. %s", ErrInvalidInput, strings.Join(messages, ". "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return "passwords are not the same"
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
