// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"html"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/apperror"
)

// xssPolicy strips every HTML element. Its entity escaping of the remaining
// text is undone by sanitizeString.
var xssPolicy = bluemonday.StrictPolicy()

// sanitizeString removes markup from s and escapes any "<" left over. Quotes,
// apostrophes and ampersands are kept as typed, so "O'Brien" and
// "o'brien@example.com" survive unchanged.
func sanitizeString(s string) string {
	text := html.UnescapeString(xssPolicy.Sanitize(s))
	return strings.ReplaceAll(text, "<", "&lt;")
}

// withSanitizedInput cleans the query string and the JSON body before they
// reach a handler:
//   - keys starting with "$" or containing "." are dropped, so clients cannot
//     smuggle query operators or nested paths;
//   - string values are stripped of HTML markup.
//
// Bodies that are not valid JSON are passed through unchanged and rejected by
// the handler that decodes them.
func (h *Handler) withSanitizedInput(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.RawQuery = sanitizeQuery(r.URL.Query()).Encode()

		if r.Body != nil && r.Body != http.NoBody {
			body, err := io.ReadAll(r.Body)
			r.Body.Close()
			if err != nil {
				h.writeError(w, r, bodyReadError(err))
				return
			}

			body = sanitizeJSON(body)
			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
			r.Header.Set("Content-Length", strconv.Itoa(len(body)))
		}

		next.ServeHTTP(w, r)
	})
}

func bodyReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return apperror.Wrap(err, app.MsgRequestBodyTooLarge, http.StatusRequestEntityTooLarge)
	}
	return apperror.Wrap(err, app.MsgInvalidRequestBody, http.StatusBadRequest)
}

func sanitizeQuery(values url.Values) url.Values {
	for key, vals := range values {
		if isOperatorKey(key) {
			delete(values, key)
			continue
		}
		for i, v := range vals {
			vals[i] = sanitizeString(v)
		}
	}
	return values
}

func sanitizeJSON(body []byte) []byte {
	if len(bytes.TrimSpace(body)) == 0 {
		return body
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return body
	}

	cleaned, err := json.Marshal(sanitizeValue(doc))
	if err != nil {
		return body
	}
	return cleaned
}

func sanitizeValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for key, item := range value {
			if isOperatorKey(key) {
				delete(value, key)
				continue
			}
			value[key] = sanitizeValue(item)
		}
		return value
	case []any:
		for i, item := range value {
			value[i] = sanitizeValue(item)
		}
		return value
	case string:
		return sanitizeString(value)
	default:
		return value
	}
}

// isOperatorKey reports whether key, or any of its bracket segments, looks
// like a query operator ("$gt") or a dotted path ("a.b").
func isOperatorKey(key string) bool {
	if strings.Contains(key, ".") {
		return true
	}
	segments := strings.FieldsFunc(key, func(r rune) bool { return r == '[' || r == ']' })
	return slices.ContainsFunc(segments, func(s string) bool { return strings.HasPrefix(s, "$") })
}
