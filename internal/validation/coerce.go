package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Raw values come from JSON or a protobuf Struct, so they are one of
// nil, string, float64, bool, []any or map[string]any.

// errMissing marks an absent or null value.
var errMissing = errors.New("missing")

// text coerces a raw value to a string. Absent and null read as "".
func text(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	default:
		return "", false
	}
}

// number coerces a raw value to a finite float64.
// Numeric text is parsed; empty text reads as 0 like a cleared number input.
func number(v any) (float64, error) {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0, errMissing
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", t, err)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %v", f)
	}
	return f, nil
}

// flag coerces a raw value to a bool. Checkbox text values are accepted.
func flag(v any) (bool, bool) {
	switch t := v.(type) {
	case nil:
		return false, true
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "false", "off", "0":
			return false, true
		case "true", "on", "1":
			return true, true
		}
	}
	return false, false
}
