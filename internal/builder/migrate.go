// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// migrate.go normalizes legacy numeric spacing values to tokens. Apps
// saved before the spacing-token scale was introduced carry raw pixel
// numbers in padding/gap/height props; this pass rewrites them on load so
// the rest of the pipeline only ever sees tokens.
package builder

// MigrateLegacySpacing walks every component in every screen and replaces
// props.padding, props.gap, and (for spacer nodes) props.height with their
// token equivalents wherever the migration actually changes the value.
//
// The returned flag tells the caller whether any rewrite occurred, so the
// normalized form can be written back to storage only when something
// changed. A nil collection is returned unchanged with didMigrate=false —
// this utility degrades to a no-op on malformed input rather than failing.
//
// The walk is iterative and shares the validation guard ceiling: past
// MaxTreeNodes visited nodes or MaxTreeDepth levels it stops early,
// leaving the remainder untouched. Oversized payloads are rejected by
// ValidateScreens anyway; the cap here only bounds work.
func MigrateLegacySpacing(screens []Screen) ([]Screen, bool) {
	if screens == nil {
		return screens, false
	}

	type frame struct {
		c     *Component
		depth int
	}

	didMigrate := false
	var stack []frame
	for i := range screens {
		for j := range screens[i].Components {
			stack = append(stack, frame{c: &screens[i].Components[j], depth: 1})
		}
	}

	visited := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited >= MaxTreeNodes {
			break
		}
		visited++

		if migrateNode(f.c) {
			didMigrate = true
		}

		if f.depth >= MaxTreeDepth {
			continue
		}
		for i := len(f.c.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{c: &f.c.Children[i], depth: f.depth + 1})
		}
	}

	return screens, didMigrate
}

// migrateNode rewrites the spacing-bearing props of a single node.
// Reports whether any value actually changed. Values that fail migration
// (objects, unparsable strings) are left as-is for validation to flag.
func migrateNode(c *Component) bool {
	if c.Props == nil {
		return false
	}

	changed := false
	props := []string{"padding", "gap"}
	if c.Type == TypeSpacer {
		props = append(props, "height")
	}

	for _, prop := range props {
		v, ok := c.Props[prop]
		if !ok {
			continue
		}
		token, ok := MigrateLegacySpacingValue(v)
		if !ok {
			continue
		}
		// Only count it as a migration when the stored value differs.
		// A prop that already holds the token string is left alone so
		// the caller's write-back gate stays closed.
		if s, isStr := v.(string); isStr && s == string(token) {
			continue
		}
		if t, isTok := v.(SpacingToken); isTok && t == token {
			continue
		}
		c.Props[prop] = string(token)
		changed = true
	}
	return changed
}
