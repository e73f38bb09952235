// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// screens.go holds operations over a whole screens collection: the capped
// structural walk behind the size guard, deep cloning with fresh ids, and
// JSON decoding of the persisted editor_screens column.
package builder

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// newID mints a collision-safe identifier for screens and components.
// Every clone and conversion assigns fresh ids so that no two app
// instances ever share an identifier with each other or with the
// template catalog.
func newID() string {
	return uuid.NewString()
}

// Stats summarizes one capped walk over a screens collection.
type Stats struct {
	Nodes    int  // components visited before the walk stopped
	MaxDepth int  // deepest nesting level reached
	Screens  int  // number of screens in the collection
	// Truncated is set when the walk hit the node or depth ceiling and
	// stopped early. A truncated payload is oversized by definition.
	Truncated bool
}

// CollectStats walks every component in every screen iteratively and
// returns the structural stats. The walk visits at most MaxTreeNodes
// components and never follows children beyond MaxTreeDepth levels, so it
// terminates quickly even on a degenerate payload.
func CollectStats(screens []Screen) Stats {
	type frame struct {
		c     *Component
		depth int
	}

	stats := Stats{Screens: len(screens)}
	var stack []frame
	for i := range screens {
		for j := range screens[i].Components {
			stack = append(stack, frame{c: &screens[i].Components[j], depth: 1})
		}
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if stats.Nodes >= MaxTreeNodes {
			stats.Truncated = true
			return stats
		}
		stats.Nodes++
		if f.depth > stats.MaxDepth {
			stats.MaxDepth = f.depth
		}
		if f.depth >= MaxTreeDepth && len(f.c.Children) > 0 {
			stats.Truncated = true
			return stats
		}

		for i := len(f.c.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{c: &f.c.Children[i], depth: f.depth + 1})
		}
	}

	return stats
}

// CloneComponent returns a deep copy of c with a freshly generated id on
// every node. Children are cloned recursively before assignment, so the
// copy preserves tree shape exactly while sharing nothing with the source.
func CloneComponent(c Component) Component {
	out := Component{
		ID:    newID(),
		Type:  c.Type,
		Props: cloneProps(c.Props),
	}
	if len(c.Children) > 0 {
		out.Children = make([]Component, len(c.Children))
		for i, child := range c.Children {
			out.Children[i] = CloneComponent(child)
		}
	}
	return out
}

// CloneScreen returns a deep copy of s with a fresh screen id and fresh
// ids on every component. Name, icon, and the home flag are preserved.
func CloneScreen(s Screen) Screen {
	out := Screen{
		ID:     newID(),
		Name:   s.Name,
		Icon:   s.Icon,
		IsHome: s.IsHome,
	}
	if len(s.Components) > 0 {
		out.Components = make([]Component, len(s.Components))
		for i, c := range s.Components {
			out.Components[i] = CloneComponent(c)
		}
	}
	return out
}

// cloneProps deep-copies a props bag. Nested maps and slices are copied;
// scalar values are shared, which is safe because scalars are immutable.
func cloneProps(props map[string]any) map[string]any {
	if props == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}

// DecodeScreens parses a persisted or client-submitted editor_screens JSON
// array. It only decodes — callers run ValidateScreens (and usually
// MigrateLegacySpacing first) on the result.
func DecodeScreens(raw []byte) ([]Screen, error) {
	var screens []Screen
	if err := json.Unmarshal(raw, &screens); err != nil {
		return nil, fmt.Errorf("decode screens: %w", err)
	}
	return screens, nil
}

// EncodeScreens serializes a screens collection for storage.
func EncodeScreens(screens []Screen) ([]byte, error) {
	raw, err := json.Marshal(screens)
	if err != nil {
		return nil, fmt.Errorf("encode screens: %w", err)
	}
	return raw, nil
}
