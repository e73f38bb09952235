// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// personalize.go turns a catalog template into the starting screens for a
// concrete app. Personalization is a targeted, allowlisted substitution of
// known placeholder strings — not a general template-variable system: any
// text it does not recognize passes through verbatim.
package templates

import (
	"strings"

	"applyn/internal/builder"
)

// taglines maps a template id to the hero subtitle used after
// personalization. Verticals without an entry keep the catalog subtitle.
var taglines = map[string]string{
	"ecommerce":   "Shop the best products online",
	"restaurant":  "Order your favorites in a tap",
	"salon":       "Book your next appointment",
	"fitness":     "Your training, in your pocket",
	"education":   "Learn anywhere, anytime",
	"healthcare":  "Book a visit in seconds",
	"realestate":  "Browse homes on the go",
	"travel":      "Plan your next trip",
	"grocery":     "Groceries delivered fast",
	"fashion":     "Wear what you love",
	"electronics": "Gadgets at your fingertips",
	"services":    "Help is one tap away",
}

// heroPlaceholders are the catalog hero titles that get replaced with the
// app's display name. Matching is substring-based because some verticals
// decorate the placeholder ("Welcome to our store").
var heroPlaceholders = []string{"Fresh Products", "Welcome"}

// BuildScreens looks up a template, clones it, and rewrites its
// placeholder text with the app's name. Returns false when the template
// id is unknown — callers must check rather than expect an error.
//
// The result is the renderer-facing screens projection (id, name, icon,
// isHome, components); template-level metadata like colors and features
// stays on the template.
func BuildScreens(templateID, appName string) ([]builder.Screen, bool) {
	t, ok := Find(templateID)
	if !ok {
		return nil, false
	}

	clone := Clone(t)
	for i := range clone.Screens {
		for j := range clone.Screens[i].Components {
			personalizeTree(&clone.Screens[i].Components[j], templateID, appName)
		}
	}
	return clone.Screens, true
}

// personalizeTree walks one component subtree iteratively and applies the
// substitution rules to hero, heading, and text nodes.
func personalizeTree(root *builder.Component, templateID, appName string) {
	stack := []*builder.Component{root}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		personalizeNode(c, templateID, appName)

		for i := range c.Children {
			stack = append(stack, &c.Children[i])
		}
	}
}

func personalizeNode(c *builder.Component, templateID, appName string) {
	switch c.Type {
	case builder.TypeHero:
		if title, ok := c.Props["title"].(string); ok && isHeroPlaceholder(title) {
			c.Props["title"] = appName
		}
		if _, ok := c.Props["subtitle"].(string); ok {
			if tagline, has := taglines[templateID]; has {
				c.Props["subtitle"] = tagline
			}
		}
	case builder.TypeHeading, builder.TypeText:
		switch c.Props["text"] {
		case "About Us":
			c.Props["text"] = "About " + appName
		case "Contact Us":
			c.Props["text"] = "Contact " + appName
		}
	}
}

func isHeroPlaceholder(title string) bool {
	for _, p := range heroPlaceholders {
		if strings.Contains(title, p) {
			return true
		}
	}
	return false
}
