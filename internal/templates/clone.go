// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package templates

import "applyn/internal/builder"

// Clone returns a deep copy of a template with fresh identifiers on every
// screen and every component. Cloning is what makes concurrent app
// creation from the same catalog entry safe: each caller gets an
// independently-owned tree, and id sets are disjoint between any two
// clones and the catalog itself.
//
// Template-level scalars (name, colors, icon) are copied by value; the
// features slice is copied so a holder of the clone cannot reach back
// into the catalog.
func Clone(t IndustryTemplate) IndustryTemplate {
	out := IndustryTemplate{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		Icon:           t.Icon,
	}
	if len(t.Features) > 0 {
		out.Features = append([]string(nil), t.Features...)
	}
	if len(t.Screens) > 0 {
		out.Screens = make([]builder.Screen, len(t.Screens))
		for i, s := range t.Screens {
			out.Screens[i] = builder.CloneScreen(s)
		}
	}
	return out
}
