// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

// Reserved query keys. They control pagination, ordering and projection and
// never reach the filter predicate.
const (
	KeyPage   = "page"
	KeySort   = "sort"
	KeyLimit  = "limit"
	KeyFields = "fields"
)

// ReservedKeys lists every key excluded from [Translator.Filter].
var ReservedKeys = []string{KeyPage, KeySort, KeyLimit, KeyFields}

// Options holds the per-deployment defaults used by [Translator].
type Options struct {
	// DefaultPage is used when "page" is missing or not a positive integer.
	DefaultPage int

	// DefaultLimit is used when "limit" is missing or not a positive integer.
	DefaultLimit int

	// DefaultSort is applied when "sort" is absent, in "-field field" notation.
	DefaultSort string

	// TieBreakField is appended to the default ordering so records with equal
	// primary keys keep a stable order across pages.
	TieBreakField string

	// ExcludedField is hidden by the default projection.
	ExcludedField string
}

// DefaultOptions returns page 1, limit 100, newest first with an "id"
// tie-break, and the "version" field hidden.
func DefaultOptions() Options {
	return Options{
		DefaultPage:   1,
		DefaultLimit:  100,
		DefaultSort:   "-createdAt",
		TieBreakField: "id",
		ExcludedField: "version",
	}
}

// withDefaults fills zero fields of o from [DefaultOptions].
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DefaultPage <= 0 {
		o.DefaultPage = d.DefaultPage
	}
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = d.DefaultLimit
	}
	if o.DefaultSort == "" {
		o.DefaultSort = d.DefaultSort
	}
	if o.TieBreakField == "" {
		o.TieBreakField = d.TieBreakField
	}
	if o.ExcludedField == "" {
		o.ExcludedField = d.ExcludedField
	}
	return o
}
