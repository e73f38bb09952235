package builder

import "testing"

func sampleBlueprint() Blueprint {
	return Blueprint{
		Theme: BlueprintTheme{PrimaryColor: "#2563eb", SecondaryColor: "#f59e0b"},
		Tabs: []NavTab{
			{
				Label: "Home",
				Icon:  "home",
				Sections: []Section{
					{Kind: SectionHero, Title: "My Store", Subtitle: "Shop now"},
					{Kind: SectionProductGrid},
				},
			},
			{
				Label: "About",
				Sections: []Section{
					{Kind: SectionTextBlock, Body: "We sell things."},
					{Kind: SectionContactForm},
				},
			},
		},
		Categories: []BlueprintCategory{{ID: "cat1", Name: "Featured"}},
		Products:   []BlueprintProduct{{ID: "p1", Name: "Widget", Price: 9.99}},
	}
}

// TestScreensFromBlueprint converts a blueprint and validates the result
// through the normal pipeline: the converter must only ever emit canonical
// screens.
func TestScreensFromBlueprint(t *testing.T) {
	screens, err := ScreensFromBlueprint(sampleBlueprint())
	if err != nil {
		t.Fatalf("ScreensFromBlueprint: %v", err)
	}
	if len(screens) != 2 {
		t.Fatalf("got %d screens, want 2", len(screens))
	}

	if !screens[0].IsHome || screens[1].IsHome {
		t.Error("first tab must become the home screen")
	}
	if screens[0].Name != "Home" || screens[1].Name != "About" {
		t.Errorf("screen names = %q, %q", screens[0].Name, screens[1].Name)
	}
	if screens[1].Icon != DefaultScreenIcon {
		t.Errorf("missing tab icon should default, got %q", screens[1].Icon)
	}

	wantTypes := [][]ComponentType{
		{TypeHero, TypeProductGrid},
		{TypeText, TypeForm},
	}
	for i, types := range wantTypes {
		for j, want := range types {
			if got := screens[i].Components[j].Type; got != want {
				t.Errorf("screen %d component %d type = %q, want %q", i, j, got, want)
			}
		}
	}

	if screens[0].Components[0].Props["title"] != "My Store" {
		t.Errorf("hero title not carried over: %+v", screens[0].Components[0].Props)
	}

	// The conversion output must pass schema validation as-is.
	if _, issues := ValidateScreens(screens); len(issues) != 0 {
		t.Errorf("converted screens fail validation: %v", issues)
	}
}

// TestScreensFromBlueprintUnknownKind: a corrupt section kind fails the
// whole conversion.
func TestScreensFromBlueprintUnknownKind(t *testing.T) {
	bp := Blueprint{Tabs: []NavTab{{
		Label:    "Home",
		Sections: []Section{{Kind: "mystery_widget"}},
	}}}

	if _, err := ScreensFromBlueprint(bp); err == nil {
		t.Error("expected error for unknown section kind")
	}
}

// TestScreensFromBlueprintFreshIDs: two conversions of the same blueprint
// never share ids.
func TestScreensFromBlueprintFreshIDs(t *testing.T) {
	a, err := ScreensFromBlueprint(sampleBlueprint())
	if err != nil {
		t.Fatal(err)
	}
	b, err := ScreensFromBlueprint(sampleBlueprint())
	if err != nil {
		t.Fatal(err)
	}

	idsA := collectIDs(a)
	for id := range collectIDs(b) {
		if idsA[id] {
			t.Errorf("conversions share id %q", id)
		}
	}
}
