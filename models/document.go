// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Document is a projected record: only the fields selected by the query's
// projection are present, keyed by their API names.
type Document map[string]any

// UserList is one page of users together with the number of users matching
// the filter across all pages.
type UserList struct {
	Users []Document
	Total int64
}
