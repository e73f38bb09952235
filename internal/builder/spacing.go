// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// Package builder defines the visual screen-builder data model: the typed
// component tree persisted in an app's editor_screens column, its validation
// rules, and the legacy-value migration passes applied on load.
package builder

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SpacingToken is a symbolic design-system spacing value. Spacing-bearing
// props (padding, gap, spacer height) must hold one of these after
// validation; raw pixel numbers are a legacy representation only.
type SpacingToken string

const (
	Space0  SpacingToken = "space-0"
	Space4  SpacingToken = "space-4"
	Space8  SpacingToken = "space-8"
	Space16 SpacingToken = "space-16"
	Space24 SpacingToken = "space-24"
	Space32 SpacingToken = "space-32"
	Space48 SpacingToken = "space-48"
)

// spacingScale lists all tokens in ascending pixel order. The position of a
// token in this slice is its scale index, used by the monotonicity tests.
var spacingScale = []SpacingToken{
	Space0, Space4, Space8, Space16, Space24, Space32, Space48,
}

// spacingCeilings maps each token (by scale index) to the largest raw pixel
// value it absorbs during legacy migration. Space48 has no ceiling — it
// catches everything above 32.
var spacingCeilings = []float64{0, 4, 8, 16, 24, 32}

// IsSpacingToken reports whether v is a member of the spacing scale.
func IsSpacingToken(v string) bool {
	for _, t := range spacingScale {
		if string(t) == v {
			return true
		}
	}
	return false
}

// SpacingIndex returns the position of t on the spacing scale, or -1 if t
// is not a valid token.
func SpacingIndex(t SpacingToken) int {
	for i, s := range spacingScale {
		if s == t {
			return i
		}
	}
	return -1
}

// SpacingTokens returns the full spacing scale in ascending pixel order.
// Callers must not mutate the returned slice.
func SpacingTokens() []SpacingToken {
	return spacingScale
}

// MigrateLegacySpacingValue normalizes a persisted spacing value to a token.
//
// Valid tokens pass through unchanged (the migration is idempotent). Finite
// numbers map to the smallest token whose pixel ceiling is >= the number, so
// larger raw values never map to a smaller token. Strings are first checked
// as tokens, then parsed as numbers. Anything else — objects, NaN,
// unparsable strings, nil — fails with ok=false; there is no silent
// coercion to a default token.
func MigrateLegacySpacingValue(value any) (SpacingToken, bool) {
	switch v := value.(type) {
	case SpacingToken:
		if SpacingIndex(v) >= 0 {
			return v, true
		}
		return "", false
	case string:
		if IsSpacingToken(v) {
			return SpacingToken(v), true
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return "", false
		}
		return tokenForPixels(n)
	case float64:
		return tokenForPixels(v)
	case float32:
		return tokenForPixels(float64(v))
	case int:
		return tokenForPixels(float64(v))
	case int64:
		return tokenForPixels(float64(v))
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return "", false
		}
		return tokenForPixels(n)
	default:
		return "", false
	}
}

// tokenForPixels maps a raw pixel value onto the spacing scale using the
// legacy breakpoints: <=0, <=4, <=8, <=16, <=24, <=32, else 48.
func tokenForPixels(px float64) (SpacingToken, bool) {
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return "", false
	}
	for i, ceiling := range spacingCeilings {
		if px <= ceiling {
			return spacingScale[i], true
		}
	}
	return Space48, true
}
