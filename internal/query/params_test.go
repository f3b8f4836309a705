// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   Params
	}{
		{
			name:   "flat keys",
			values: url.Values{"name": {"Bob"}, "role": {"admin"}},
			want:   Params{"name": "Bob", "role": "admin"},
		},
		{
			name:   "bracket notation",
			values: url.Values{"price[gte]": {"100"}},
			want:   Params{"price": map[string]any{"gte": "100"}},
		},
		{
			name:   "deep brackets",
			values: url.Values{"a[b][c]": {"x"}},
			want:   Params{"a": map[string]any{"b": map[string]any{"c": "x"}}},
		},
		{
			name:   "two operators on one field",
			values: url.Values{"price[gte]": {"1"}, "price[lte]": {"9"}},
			want:   Params{"price": map[string]any{"gte": "1", "lte": "9"}},
		},
		{
			name:   "repeated key",
			values: url.Values{"tag": {"a", "b"}},
			want:   Params{"tag": []any{"a", "b"}},
		},
		{
			name:   "malformed brackets kept verbatim",
			values: url.Values{"a[b": {"1"}, "[x]": {"2"}, "c[]": {"3"}},
			want:   Params{"a[b": "1", "[x]": "2", "c[]": "3"},
		},
		{
			name:   "plain and bracketed value on one key are both kept",
			values: url.Values{"price": {"5"}, "price[gte]": {"3"}},
			want:   Params{"price": []any{"5", map[string]any{"gte": "3"}}},
		},
		{
			name:   "repeated plain value then bracketed value",
			values: url.Values{"price": {"5", "6"}, "price[gte]": {"3"}},
			want:   Params{"price": []any{"5", "6", map[string]any{"gte": "3"}}},
		},
		{
			name:   "deeper key under a plain value",
			values: url.Values{"a[b]": {"1"}, "a[b][c]": {"2"}},
			want:   Params{"a": map[string]any{"b": []any{"1", map[string]any{"c": "2"}}}},
		},
		{
			name:   "empty value list skipped",
			values: url.Values{"a": {}},
			want:   Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValues(tt.values))
		})
	}
}

func TestParams_String(t *testing.T) {
	p := Params{
		"single": "x",
		"multi":  []any{"a", "b"},
		"nested": map[string]any{"k": "v"},
	}

	s, ok := p.String("single")
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	s, ok = p.String("multi")
	assert.True(t, ok)
	assert.Equal(t, "b", s)

	_, ok = p.String("nested")
	assert.False(t, ok)

	_, ok = p.String("missing")
	assert.False(t, ok)
}

func TestParams_CloneIsDeep(t *testing.T) {
	p := Params{"a": map[string]any{"b": "c"}, "l": []any{"x"}}
	c := p.Clone()

	c["a"].(map[string]any)["b"] = "changed"
	c["l"].([]any)[0] = "changed"

	assert.Equal(t, "c", p["a"].(map[string]any)["b"])
	assert.Equal(t, "x", p["l"].([]any)[0])
}
