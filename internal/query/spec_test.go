// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingBuilder struct {
	calls      []string
	filter     Predicate
	sort       []SortField
	projection Projection
	skip       int
	limit      int
}

func (b *recordingBuilder) ApplyFilter(p Predicate) {
	b.calls = append(b.calls, "filter")
	b.filter = p
}

func (b *recordingBuilder) ApplySort(s []SortField) {
	b.calls = append(b.calls, "sort")
	b.sort = s
}

func (b *recordingBuilder) ApplyProjection(p Projection) {
	b.calls = append(b.calls, "projection")
	b.projection = p
}

func (b *recordingBuilder) ApplyWindow(skip, limit int) {
	b.calls = append(b.calls, "window")
	b.skip, b.limit = skip, limit
}

func TestSpec_ApplyTo(t *testing.T) {
	spec := Spec{
		Filter:     Predicate{"price": map[string]any{OpGte: "100"}},
		Sort:       []SortField{{Field: "price"}},
		Projection: Projection{Fields: []string{"name", "price"}},
		Window:     Window{Skip: 5, Limit: 5},
	}

	b := &recordingBuilder{}
	spec.ApplyTo(b)

	assert.Equal(t, []string{"filter", "sort", "projection", "window"}, b.calls)
	assert.Equal(t, spec.Filter, b.filter)
	assert.Equal(t, spec.Sort, b.sort)
	assert.Equal(t, spec.Projection, b.projection)
	assert.Equal(t, 5, b.skip)
	assert.Equal(t, 5, b.limit)

	// builder owns a copy
	b.filter["price"] = "x"
	assert.Equal(t, map[string]any{OpGte: "100"}, spec.Filter["price"])
}

func TestSortField_String(t *testing.T) {
	assert.Equal(t, "name", SortField{Field: "name"}.String())
	assert.Equal(t, "-name", SortField{Field: "name", Desc: true}.String())
}

func TestParseSort_SkipsEmptyNames(t *testing.T) {
	assert.Equal(t, []SortField{{Field: "a", Desc: true}}, parseSort("- -a  "))
}
