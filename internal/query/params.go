// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"net/url"
	"slices"
	"strings"
)

// Params is the request's query string in structured form. Values are either
// string, []any (repeated keys) or nested Params-shaped map[string]any
// produced from bracket notation such as "price[gte]=100".
type Params map[string]any

// ParseValues converts url.Values into Params, expanding bracket notation
// into nested maps:
//
//	price[gte]=100&name=Bob  →  {"price": {"gte": "100"}, "name": "Bob"}
//
// A key with a single value maps to a string, a key with several values maps
// to []any. Keys with malformed brackets are kept verbatim.
func ParseValues(values url.Values) Params {
	params := make(Params, len(values))

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		vals := values[key]
		if len(vals) == 0 {
			continue
		}

		var value any
		if len(vals) == 1 {
			value = vals[0]
		} else {
			list := make([]any, len(vals))
			for i, v := range vals {
				list[i] = v
			}
			value = list
		}

		setPath(params, splitKey(key), value)
	}

	return params
}

// String returns the value stored under key as a string. For repeated keys the
// last value wins. Nested maps are not strings and report ok == false.
func (p Params) String(key string) (string, bool) {
	switch v := p[key].(type) {
	case string:
		return v, true
	case []any:
		for i := len(v) - 1; i >= 0; i-- {
			if s, ok := v[i].(string); ok {
				return s, true
			}
		}
	}

	return "", false
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	return Params(cloneMap(p))
}

// splitKey splits "a[b][c]" into ["a", "b", "c"]. Anything that is not a
// well-formed bracket chain is returned as a single segment.
func splitKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}
	}

	path := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		segment := rest[1:end]
		if segment == "" {
			return []string{key}
		}
		path = append(path, segment)
		rest = rest[end+1:]
	}

	return path
}

// setPath stores value at path. When a key is given both as a plain value and
// with brackets ("price=5&price[gte]=3") neither is dropped: like qs, both end
// up in a list, {"price": ["5", {"gte": "3"}]}.
func setPath(root map[string]any, path []string, value any) {
	node := root
	for i, segment := range path[:len(path)-1] {
		switch existing := node[segment].(type) {
		case map[string]any:
			node = existing
			continue
		case nil:
		default:
			nested := make(map[string]any)
			setPath(nested, path[i+1:], value)
			node[segment] = appendValue(existing, nested)
			return
		}

		child := make(map[string]any)
		node[segment] = child
		node = child
	}

	last := path[len(path)-1]
	if existing, ok := node[last]; ok {
		node[last] = appendValue(existing, value)
		return
	}
	node[last] = value
}

func appendValue(existing, value any) []any {
	list, ok := existing.([]any)
	if !ok {
		list = []any{existing}
	}
	if more, ok := value.([]any); ok {
		return append(list, more...)
	}
	return append(list, value)
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneMap(value)
	case Params:
		return cloneMap(value)
	case Predicate:
		return cloneMap(value)
	case []any:
		list := make([]any, len(value))
		for i, item := range value {
			list[i] = cloneValue(item)
		}
		return list
	default:
		return value
	}
}
