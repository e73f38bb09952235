// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

package builder

// ComponentType tags a node in the editor component tree. The closed set
// below is the only defense against arbitrary UI being injected into the
// native-style renderer: anything outside it is rejected at validation time.
type ComponentType string

const (
	TypeText        ComponentType = "text"
	TypeHeading     ComponentType = "heading"
	TypeImage       ComponentType = "image"
	TypeButton      ComponentType = "button"
	TypeContainer   ComponentType = "container"
	TypeGrid        ComponentType = "grid"
	TypeCard        ComponentType = "card"
	TypeList        ComponentType = "list"
	TypeHero        ComponentType = "hero"
	TypeProductGrid ComponentType = "productGrid"
	TypeSpacer      ComponentType = "spacer"
	TypeDivider     ComponentType = "divider"
	TypeVideo       ComponentType = "video"
	TypeMap         ComponentType = "map"
	TypeForm        ComponentType = "form"
	TypeInput       ComponentType = "input"
	TypeIcon        ComponentType = "icon"
	TypeCarousel    ComponentType = "carousel"
	TypeTabs        ComponentType = "tabs"
	TypeSocialLinks ComponentType = "socialLinks"
)

// componentTypes is the allowlist consulted by validation. Keep in sync
// with the constants above.
var componentTypes = map[ComponentType]bool{
	TypeText:        true,
	TypeHeading:     true,
	TypeImage:       true,
	TypeButton:      true,
	TypeContainer:   true,
	TypeGrid:        true,
	TypeCard:        true,
	TypeList:        true,
	TypeHero:        true,
	TypeProductGrid: true,
	TypeSpacer:      true,
	TypeDivider:     true,
	TypeVideo:       true,
	TypeMap:         true,
	TypeForm:        true,
	TypeInput:       true,
	TypeIcon:        true,
	TypeCarousel:    true,
	TypeTabs:        true,
	TypeSocialLinks: true,
}

// IsComponentType reports whether t is an allowlisted component type.
func IsComponentType(t ComponentType) bool {
	return componentTypes[t]
}

// Component is one node of the editor tree. A node owns its children
// outright: cloning is a full deep copy, and two apps instantiated from the
// same template never share nodes.
type Component struct {
	ID       string         `json:"id"`
	Type     ComponentType  `json:"type"`
	Props    map[string]any `json:"props"`
	Children []Component    `json:"children,omitempty"`
}

// Screen is a named, ordered collection of component trees. Icon defaults
// to "file-text" during validation. At most one screen is conventionally
// the home screen; Normalize enforces "first wins" (see screens.go).
type Screen struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Icon       string      `json:"icon"`
	IsHome     bool        `json:"isHome,omitempty"`
	Components []Component `json:"components"`
}

// DefaultScreenIcon is applied when a screen omits its icon.
const DefaultScreenIcon = "file-text"

// Field length limits for the persisted editor_screens payload.
const (
	MaxComponentIDLen = 200
	MaxScreenNameLen  = 80
	MaxScreenIconLen  = 20
)

// Structural guards for a screens collection. The walk over a payload is
// capped so a single oversized or degenerately nested document cannot burn
// unbounded CPU in a shared request-handling process. These are
// denial-of-service ceilings, not semantic limits.
const (
	MaxScreens   = 50
	MaxTreeNodes = 5000
	MaxTreeDepth = 30
)
