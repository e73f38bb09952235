// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// blueprint.go defines the legacy AppBlueprint schema: a rigid declarative
// description of an app (fixed section kinds, theme, navigation tabs, and
// typed business data) that predates the free-form editor tree.
//
// EditorScreens is the canonical representation. Blueprints are accepted
// only as a seed format and converted one way via ScreensFromBlueprint;
// nothing in the system produces a Blueprint from screens.
package builder

import "fmt"

// SectionKind is the fixed set of blueprint sections. Unlike the editor
// component allowlist this is not extensible by the visual editor.
type SectionKind string

const (
	SectionHero         SectionKind = "hero_section"
	SectionProductGrid  SectionKind = "product_grid"
	SectionCategoryList SectionKind = "category_list"
	SectionTextBlock    SectionKind = "text_block"
	SectionImageBanner  SectionKind = "image_banner"
	SectionContactForm  SectionKind = "contact_form"
)

// BlueprintTheme carries the app-wide visual settings of a blueprint.
type BlueprintTheme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily,omitempty"`
}

// NavTab is one bottom-navigation entry; each tab owns an ordered list of
// sections that make up its screen.
type NavTab struct {
	Label    string    `json:"label"`
	Icon     string    `json:"icon"`
	Sections []Section `json:"sections"`
}

// Section is one fixed-kind block on a blueprint tab.
type Section struct {
	Kind     SectionKind `json:"kind"`
	Title    string      `json:"title,omitempty"`
	Subtitle string      `json:"subtitle,omitempty"`
	Body     string      `json:"body,omitempty"`
	ImageURL string      `json:"imageUrl,omitempty"`
}

// BlueprintProduct is a typed business-data record referenced by
// product_grid sections.
type BlueprintProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Category string  `json:"category,omitempty"`
}

// BlueprintCategory groups products for category_list sections.
type BlueprintCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Blueprint is the full legacy app description.
type Blueprint struct {
	Theme      BlueprintTheme      `json:"theme"`
	Tabs       []NavTab            `json:"tabs"`
	Categories []BlueprintCategory `json:"categories,omitempty"`
	Products   []BlueprintProduct  `json:"products,omitempty"`
}

// sectionComponentTypes maps each blueprint section kind onto its editor
// component equivalent.
var sectionComponentTypes = map[SectionKind]ComponentType{
	SectionHero:         TypeHero,
	SectionProductGrid:  TypeProductGrid,
	SectionCategoryList: TypeList,
	SectionTextBlock:    TypeText,
	SectionImageBanner:  TypeImage,
	SectionContactForm:  TypeForm,
}

// ScreensFromBlueprint converts a blueprint into canonical editor screens.
// Each nav tab becomes one screen (the first tab is the home screen) and
// each section becomes the corresponding editor component. The result is
// a plain screens collection: callers validate it like any other payload.
//
// An unknown section kind fails the whole conversion — a blueprint is a
// fixed format, so an unrecognized kind means corrupt input, not a new
// feature to pass through.
func ScreensFromBlueprint(bp Blueprint) ([]Screen, error) {
	screens := make([]Screen, 0, len(bp.Tabs))
	for i, tab := range bp.Tabs {
		icon := tab.Icon
		if icon == "" {
			icon = DefaultScreenIcon
		}
		screen := Screen{
			ID:     newID(),
			Name:   tab.Label,
			Icon:   icon,
			IsHome: i == 0,
		}
		for _, sec := range tab.Sections {
			comp, err := componentFromSection(sec)
			if err != nil {
				return nil, fmt.Errorf("tab %q: %w", tab.Label, err)
			}
			screen.Components = append(screen.Components, comp)
		}
		screens = append(screens, screen)
	}
	return screens, nil
}

// componentFromSection builds the editor component for one section.
func componentFromSection(sec Section) (Component, error) {
	compType, ok := sectionComponentTypes[sec.Kind]
	if !ok {
		return Component{}, fmt.Errorf("unknown blueprint section kind %q", sec.Kind)
	}

	props := map[string]any{}
	if sec.Title != "" {
		props["title"] = sec.Title
	}
	if sec.Subtitle != "" {
		props["subtitle"] = sec.Subtitle
	}
	if sec.Body != "" {
		props["text"] = sec.Body
	}
	if sec.ImageURL != "" {
		props["src"] = sec.ImageURL
	}

	return Component{
		ID:    newID(),
		Type:  compType,
		Props: props,
	}, nil
}
