package domain

import (
	"encoding/json"
	"strconv"
)

// The settings endpoints accept loosely typed input: native booleans, string
// literals, and numbers in either form. The coercion rules differ between the
// creation and update paths and both are kept exactly as shipped.

// ParseLimit converts a raw maxWishesPerGuest value to its numeric form.
//
//	absent / null / non-numeric -> 0
//	number                      -> itself (negatives clamp to 0)
//	numeric string              -> its value
//	true                        -> 1
func ParseLimit(raw json.RawMessage) int {
	if raw == nil {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return clampLimit(int(f))
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			return clampLimit(int(parsed))
		}
		return 0
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil && b {
		return 1
	}

	return 0
}

func clampLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	return limit
}

// ParseFlag converts a raw requireName/allowComment value to a bool.
//
//	absent          -> absentDefault (true at creation; update skips absent fields)
//	native bool     -> itself
//	string "true"   -> true
//	anything else   -> false
func ParseFlag(raw json.RawMessage, absentDefault bool) bool {
	if raw == nil {
		return absentDefault
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == "true"
	}

	return false
}

// ParseActive converts a raw active value to a bool.
//
//	true / "true" / 1 / "1" -> true
//	anything else           -> false
func ParseActive(raw json.RawMessage) bool {
	if raw == nil {
		return false
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f == 1
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == "true" || s == "1"
	}

	return false
}
