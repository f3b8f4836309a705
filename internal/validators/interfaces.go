// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user request bodies before they reach the
// service layer.
package validators

import "context"

// Validator validates a request value. When fields are given, only those
// struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
