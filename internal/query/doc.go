// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query translates URL query strings into storage-agnostic query
// specifications.
//
// A [Translator] is built from a base [Spec], the request's [Params] and a set
// of [Options]. Its four chainable steps configure disjoint parts of the [Spec]:
//
//   - [Translator.Filter]      - predicate built from every non-reserved key;
//   - [Translator.Sort]        - ordering from "sort" or the configured default;
//   - [Translator.LimitFields] - projection from "fields" or the default exclusion;
//   - [Translator.Paginate]    - skip/limit window from "page" and "limit".
//
// The finished [Spec] is plain data. The storage layer executes it directly
// or replays it onto its own builder through [Spec.ApplyTo].
//
// Usage:
//
//	spec := query.NewTranslator(query.Spec{}, query.ParseValues(r.URL.Query()), opts).
//		Filter().
//		Sort().
//		LimitFields().
//		Paginate().
//		Spec()
package query
