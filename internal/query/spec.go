// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import "strings"

// Comparison operator markers written into a [Predicate] by [Translator.Filter].
const (
	OpGt  = "$gt"
	OpGte = "$gte"
	OpLt  = "$lt"
	OpLte = "$lte"
)

// Predicate is a structured filter. A field maps either to a plain value
// (equality), to []any (membership) or to a map of operator markers:
//
//	{"role": "admin", "price": {"$gte": "100"}}
//
// An empty Predicate matches every record.
type Predicate map[string]any

// SortField is one key of a multi-field ordering.
type SortField struct {
	Field string
	Desc  bool
}

// String renders the field in "-field" / "field" notation.
func (s SortField) String() string {
	if s.Desc {
		return "-" + s.Field
	}
	return s.Field
}

// Projection selects which fields are returned. With Exclude set the listed
// fields are hidden and every other field is returned.
type Projection struct {
	Fields  []string
	Exclude bool
}

// Window is the skip/limit pair implementing pagination. Limit == 0 means
// no limit.
type Window struct {
	Skip  int
	Limit int
}

// Spec is an immutable description of a collection query: predicate,
// ordering, projection and window.
type Spec struct {
	Filter     Predicate
	Sort       []SortField
	Projection Projection
	Window     Window
}

// Builder is implemented by storage-side query builders that want to receive
// a [Spec] step by step.
type Builder interface {
	ApplyFilter(Predicate)
	ApplySort([]SortField)
	ApplyProjection(Projection)
	ApplyWindow(skip, limit int)
}

// ApplyTo replays s onto b in filter, sort, projection, window order.
func (s Spec) ApplyTo(b Builder) {
	c := s.Clone()
	b.ApplyFilter(c.Filter)
	b.ApplySort(c.Sort)
	b.ApplyProjection(c.Projection)
	b.ApplyWindow(c.Window.Skip, c.Window.Limit)
}

// SortString renders the ordering as a space separated list, e.g.
// "price -createdAt".
func (s Spec) SortString() string {
	parts := make([]string, len(s.Sort))
	for i, f := range s.Sort {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

// Clone returns a deep copy of s.
func (s Spec) Clone() Spec {
	c := Spec{
		Window: s.Window,
		Projection: Projection{
			Exclude: s.Projection.Exclude,
		},
	}
	if s.Filter != nil {
		c.Filter = Predicate(cloneMap(s.Filter))
	}
	if s.Sort != nil {
		c.Sort = append([]SortField(nil), s.Sort...)
	}
	if s.Projection.Fields != nil {
		c.Projection.Fields = append([]string(nil), s.Projection.Fields...)
	}
	return c
}

// parseSort turns "price -createdAt" into sort fields.
func parseSort(spec string) []SortField {
	words := strings.Fields(spec)
	fields := make([]SortField, 0, len(words))
	for _, w := range words {
		desc := strings.HasPrefix(w, "-")
		name := strings.TrimLeft(w, "-+")
		if name == "" {
			continue
		}
		fields = append(fields, SortField{Field: name, Desc: desc})
	}
	return fields
}

// parseProjection turns "name price" or "-version" into a projection. A
// leading "-" on the first field switches the whole projection to exclusion.
func parseProjection(spec string) Projection {
	words := strings.Fields(spec)
	p := Projection{Fields: make([]string, 0, len(words))}
	for i, w := range words {
		if i == 0 && strings.HasPrefix(w, "-") {
			p.Exclude = true
		}
		name := strings.TrimLeft(w, "-+")
		if name == "" {
			continue
		}
		p.Fields = append(p.Fields, name)
	}
	return p
}
