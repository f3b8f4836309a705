// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// operatorToken matches the comparison words rewritten into operator markers.
var operatorToken = regexp.MustCompile(`\b(gte|gt|lte|lt)\b`)

// Translator converts request parameters into a [Spec]. Each step touches one
// part of the [Spec] only; steps may run in any order. A Translator serves a
// single request and is not safe for concurrent use.
type Translator struct {
	spec   Spec
	params Params
	opts   Options
}

// NewTranslator returns a Translator that starts from base and reads params.
// Zero fields of opts fall back to [DefaultOptions].
func NewTranslator(base Spec, params Params, opts Options) *Translator {
	if params == nil {
		params = Params{}
	}

	return &Translator{
		spec:   base.Clone(),
		params: params,
		opts:   opts.withDefaults(),
	}
}

// Filter builds the predicate from every non-reserved parameter. The words
// gte, gt, lte and lt are rewritten to $gte, $gt, $lte and $lt wherever they
// appear as whole words, so "price[gte]=100" becomes {"price": {"$gte": "100"}}.
// Values are not inspected: a value equal to one of the words is rewritten too.
//
// A second call merges its predicate into the existing one.
func (t *Translator) Filter() *Translator {
	queryObj := t.params.Clone()
	for _, key := range ReservedKeys {
		delete(queryObj, key)
	}

	raw, err := json.MarshalNoEscape(queryObj)
	if err != nil {
		return t
	}

	rewritten := operatorToken.ReplaceAll(raw, []byte("$$${1}"))

	predicate := make(Predicate)
	if err := json.Unmarshal(rewritten, &predicate); err != nil {
		return t
	}

	if t.spec.Filter == nil {
		t.spec.Filter = predicate
	} else {
		mergeInto(t.spec.Filter, predicate)
	}

	return t
}

// Sort sets the ordering from "sort" (comma separated, "-" for descending).
// Without it the default ordering plus the tie-break field is used.
func (t *Translator) Sort() *Translator {
	if sortBy, ok := t.params.String(KeySort); ok && strings.TrimSpace(sortBy) != "" {
		t.spec.Sort = parseSort(strings.ReplaceAll(sortBy, ",", " "))
		return t
	}

	t.spec.Sort = parseSort(t.opts.DefaultSort + " " + t.opts.TieBreakField)
	return t
}

// LimitFields sets the projection from "fields" (comma separated). Without it
// the configured excluded field is hidden.
func (t *Translator) LimitFields() *Translator {
	if fields, ok := t.params.String(KeyFields); ok && strings.TrimSpace(fields) != "" {
		t.spec.Projection = parseProjection(strings.ReplaceAll(fields, ",", " "))
		return t
	}

	t.spec.Projection = Projection{
		Fields:  []string{t.opts.ExcludedField},
		Exclude: true,
	}
	return t
}

// Paginate sets the window from "page" and "limit". Missing, non-numeric or
// non-positive values fall back to the defaults; no error is reported.
func (t *Translator) Paginate() *Translator {
	page := t.positiveInt(KeyPage, t.opts.DefaultPage)
	limit := t.positiveInt(KeyLimit, t.opts.DefaultLimit)

	t.spec.Window = Window{
		Skip:  skipFor(page, limit),
		Limit: limit,
	}
	return t
}

// skipFor returns (page-1)*limit, saturating at math.MaxInt so that an
// absurdly large page still lands past the last row instead of wrapping.
func skipFor(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// Spec returns a copy of the query built so far.
func (t *Translator) Spec() Spec {
	return t.spec.Clone()
}

func (t *Translator) positiveInt(key string, def int) int {
	raw, ok := t.params.String(key)
	if !ok {
		return def
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// mergeInto merges src into dst. Nested maps are merged recursively; for any
// other value src wins.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeInto(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}
