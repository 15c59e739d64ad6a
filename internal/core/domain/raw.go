package domain

import (
	"math"
	"strconv"
	"strings"
)

// RawRecord is one untyped element of the index document.
// It is the loader's output before normalisation; any field may be
// missing or hold an unexpected type.
type RawRecord map[string]any

// Index document field names.
const (
	FieldID         = "id"
	FieldTitle      = "title"
	FieldPath       = "path"
	FieldUpdated    = "updated"
	FieldTags       = "tags"
	FieldTBD        = "tbd"
	FieldConfidence = "confidence"
)

// String returns the named field coerced to a trimmed string.
// Missing, null, false, zero and non-scalar values yield "".
func (r RawRecord) String(field string) string {
	return strings.TrimSpace(scalarString(r[field]))
}

// Strings returns the named field as a slice of strings.
// Only arrays are accepted; scalar elements are stringified and
// null or nested values are skipped. Anything else yields an empty slice.
// Skipping differs from plain string conversion, which would turn null
// into the badge "null" and [b, c] into "b,c".
func (r RawRecord) Strings(field string) []string {
	list, ok := r[field].([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(list))
	for _, v := range list {
		switch v := v.(type) {
		case string:
			out = append(out, v)
		case bool:
			out = append(out, strconv.FormatBool(v))
		case float64:
			out = append(out, formatNumber(v))
		case int:
			out = append(out, strconv.Itoa(v))
		}
	}
	return out
}

// Number returns the named field as a finite number.
// Numbers and numeric strings are accepted; everything else,
// including NaN and infinities, reports false.
func (r RawRecord) Number(field string) (float64, bool) {
	var f float64
	switch v := r[field].(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// scalarString coerces a decoded JSON scalar to a string.
// Falsy scalars (false, 0, "") and non-scalars coerce to "".
func scalarString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 || math.IsNaN(v) {
			return ""
		}
		return formatNumber(v)
	case int:
		if v == 0 {
			return ""
		}
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// formatNumber renders f in its shortest form, without exponent
// for everyday magnitudes.
func formatNumber(f float64) string {
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
