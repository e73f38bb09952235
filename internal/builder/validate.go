// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// validate.go checks an editor screens payload against the component-type
// allowlist, field limits, spacing-token constraints, and the structural
// size guard. Failures are reported as field-path-addressed issues, never
// as panics or opaque errors, so the HTTP layer can map them directly to
// per-field messages in the dashboard editor.
package builder

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Issue describes a single validation failure tied to the exact location
// in the payload, e.g. Path ["props","padding"].
type Issue struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Issues is the set of violations found in one validation pass. It
// implements error so stores and handlers can propagate it like any other
// failure while keeping the per-field structure intact.
type Issues []Issue

func (is Issues) Error() string {
	if len(is) == 0 {
		return "no issues"
	}
	parts := make([]string, len(is))
	for i, issue := range is {
		parts[i] = fmt.Sprintf("%s: %s", strings.Join(issue.Path, "."), issue.Message)
	}
	return strings.Join(parts, "; ")
}

// spacingProps are the component props that must hold a SpacingToken when
// present, on any component type.
var spacingProps = []string{"padding", "gap"}

// ValidateScreens normalizes and validates a full screens collection in
// place, returning the normalized slice and every violation found.
//
// The collection-level guards (screen count, total node count, nesting
// depth) each produce a single collection-level issue rather than per-node
// issues. When a guard trips, per-node validation is skipped — the payload
// is rejected wholesale before any deep work is done on it.
//
// Home-screen normalization is "first wins": the first screen marked
// IsHome keeps the flag and any later ones are cleared. Zero home screens
// is tolerated; the renderer falls back to the first screen.
func ValidateScreens(screens []Screen) ([]Screen, Issues) {
	if len(screens) > MaxScreens {
		return screens, Issues{{
			Path:    []string{"screens"},
			Message: fmt.Sprintf("too many screens: %d (max %d)", len(screens), MaxScreens),
		}}
	}

	stats := CollectStats(screens)
	if stats.Truncated {
		return screens, Issues{{
			Path:    []string{"screens"},
			Message: fmt.Sprintf("payload too large: over %d components or %d nesting levels", MaxTreeNodes, MaxTreeDepth),
		}}
	}

	var issues Issues
	homeSeen := false
	for i := range screens {
		s := &screens[i]
		base := []string{"screens", strconv.Itoa(i)}

		if n := utf8.RuneCountInString(s.ID); n < 1 || n > MaxComponentIDLen {
			issues = append(issues, Issue{
				Path:    appendPath(base, "id"),
				Message: fmt.Sprintf("screen id must be 1-%d characters", MaxComponentIDLen),
			})
		}
		if n := utf8.RuneCountInString(s.Name); n < 1 || n > MaxScreenNameLen {
			issues = append(issues, Issue{
				Path:    appendPath(base, "name"),
				Message: fmt.Sprintf("screen name must be 1-%d characters", MaxScreenNameLen),
			})
		}
		if s.Icon == "" {
			s.Icon = DefaultScreenIcon
		}
		if utf8.RuneCountInString(s.Icon) > MaxScreenIconLen {
			issues = append(issues, Issue{
				Path:    appendPath(base, "icon"),
				Message: fmt.Sprintf("screen icon must be at most %d characters", MaxScreenIconLen),
			})
		}
		if s.IsHome {
			if homeSeen {
				s.IsHome = false
			}
			homeSeen = true
		}

		for j := range s.Components {
			issues = append(issues, validateTree(&s.Components[j], appendPath(base, "components", strconv.Itoa(j)))...)
		}
	}

	return screens, issues
}

// ValidateComponent normalizes and validates a single component tree in
// place. Issue paths are relative to the component itself, e.g.
// ["props","padding"] or ["children","1","type"].
func ValidateComponent(c *Component) Issues {
	return validateTree(c, nil)
}

// validateTree walks one component subtree iteratively with an explicit
// work stack. Recursion is avoided on purpose: a maliciously deep payload
// must exhaust the depth guard, not the goroutine stack. Children are
// pushed in reverse so issues come out in document order.
func validateTree(root *Component, base []string) Issues {
	type frame struct {
		c     *Component
		path  []string
		depth int
	}

	var issues Issues
	stack := []frame{{c: root, path: base, depth: 1}}
	visited := 0

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visited++
		if visited > MaxTreeNodes || f.depth > MaxTreeDepth {
			issues = append(issues, Issue{
				Path:    base,
				Message: fmt.Sprintf("component tree too large: over %d nodes or %d levels", MaxTreeNodes, MaxTreeDepth),
			})
			return issues
		}

		issues = append(issues, validateNode(f.c, f.path)...)

		for i := len(f.c.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				c:     &f.c.Children[i],
				path:  appendPath(f.path, "children", strconv.Itoa(i)),
				depth: f.depth + 1,
			})
		}
	}

	return issues
}

// validateNode checks a single node's own fields and normalizes its props.
func validateNode(c *Component, path []string) Issues {
	var issues Issues

	if n := utf8.RuneCountInString(c.ID); n < 1 || n > MaxComponentIDLen {
		issues = append(issues, Issue{
			Path:    appendPath(path, "id"),
			Message: fmt.Sprintf("component id must be 1-%d characters", MaxComponentIDLen),
		})
	}

	// Fail closed: unknown types are rejected outright regardless of how
	// well-formed the rest of the node is.
	if !IsComponentType(c.Type) {
		issues = append(issues, Issue{
			Path:    appendPath(path, "type"),
			Message: fmt.Sprintf("unknown component type %q", c.Type),
		})
	}

	if c.Props == nil {
		c.Props = map[string]any{}
	}

	for _, prop := range spacingProps {
		if v, ok := c.Props[prop]; ok {
			if !isTokenValue(v) {
				issues = append(issues, Issue{
					Path:    appendPath(path, "props", prop),
					Message: fmt.Sprintf("%s must be a spacing token", prop),
				})
			}
		}
	}

	// Spacer height is type-conditional: only spacers carry it, and for
	// them it must be on the spacing scale.
	if c.Type == TypeSpacer {
		if v, ok := c.Props["height"]; ok && !isTokenValue(v) {
			issues = append(issues, Issue{
				Path:    appendPath(path, "props", "height"),
				Message: "spacer height must be a spacing token",
			})
		}
	}

	return issues
}

// isTokenValue reports whether a raw props value is already a valid
// spacing token. Legacy numerics are NOT accepted here — they must go
// through MigrateLegacySpacing before validation.
func isTokenValue(v any) bool {
	switch t := v.(type) {
	case SpacingToken:
		return SpacingIndex(t) >= 0
	case string:
		return IsSpacingToken(t)
	default:
		return false
	}
}

// appendPath copies base and appends elems, so sibling paths never share
// backing arrays.
func appendPath(base []string, elems ...string) []string {
	out := make([]string, 0, len(base)+len(elems))
	out = append(out, base...)
	return append(out, elems...)
}
