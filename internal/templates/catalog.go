// Copyright (c) 2026 Applyn Technologies Pvt Ltd <support@applyn.app>
// All rights reserved. See LICENSE for details.

// Package templates holds the industry template library: one pre-built
// screen tree per business vertical, used as seed content when a new app
// is created. The catalog is process-wide read-only data — consumers only
// ever receive clones (see clone.go), never references into it.
package templates

import "applyn/internal/builder"

// IndustryTemplate is one catalog entry. Screens are authored directly in
// the editor component shape but are not schema-validated: the catalog is
// trusted static data, and every app instantiated from it goes through
// normal validation on save anyway.
type IndustryTemplate struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	PrimaryColor   string           `json:"primaryColor"`
	SecondaryColor string           `json:"secondaryColor"`
	Icon           string           `json:"icon"`
	Screens        []builder.Screen `json:"screens"`
	Features       []string         `json:"features"`
}

// List returns the full catalog in display order. Callers must treat the
// result as read-only.
func List() []IndustryTemplate {
	return catalog
}

// Find looks up a template by id. Returns false for an unknown id — this
// is an expected condition, not an error.
func Find(id string) (IndustryTemplate, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return IndustryTemplate{}, false
}

// Component construction helpers for catalog authoring. Stable ids keep
// the catalog diffable; fresh ids are assigned at clone time.

func comp(id string, t builder.ComponentType, props map[string]any, children ...builder.Component) builder.Component {
	if props == nil {
		props = map[string]any{}
	}
	return builder.Component{ID: id, Type: t, Props: props, Children: children}
}

func hero(id, title, subtitle string) builder.Component {
	return comp(id, builder.TypeHero, map[string]any{
		"title":    title,
		"subtitle": subtitle,
		"padding":  string(builder.Space24),
	})
}

func heading(id, text string) builder.Component {
	return comp(id, builder.TypeHeading, map[string]any{"text": text})
}

func text(id, value string) builder.Component {
	return comp(id, builder.TypeText, map[string]any{"text": value})
}

func button(id, label string) builder.Component {
	return comp(id, builder.TypeButton, map[string]any{"label": label})
}

func spacer(id string, height builder.SpacingToken) builder.Component {
	return comp(id, builder.TypeSpacer, map[string]any{"height": string(height)})
}

func grid(id string, columns int, children ...builder.Component) builder.Component {
	return comp(id, builder.TypeGrid, map[string]any{
		"columns": columns,
		"gap":     string(builder.Space16),
	}, children...)
}

func card(id, title string) builder.Component {
	return comp(id, builder.TypeCard, map[string]any{"title": title})
}

func screen(id, name, icon string, isHome bool, components ...builder.Component) builder.Screen {
	return builder.Screen{ID: id, Name: name, Icon: icon, IsHome: isHome, Components: components}
}

// aboutScreen and contactScreen are shared across verticals; the exact
// "About Us"/"Contact Us" strings are rewritten with the app's name during
// personalization.
func aboutScreen(prefix string) builder.Screen {
	return screen(prefix+"-about", "About", "info", false,
		heading(prefix+"-about-title", "About Us"),
		text(prefix+"-about-body", "Tell your customers who you are and what makes you different."),
	)
}

func contactScreen(prefix string) builder.Screen {
	return screen(prefix+"-contact", "Contact", "phone", false,
		heading(prefix+"-contact-title", "Contact Us"),
		comp(prefix+"-contact-form", builder.TypeForm, map[string]any{
			"fields": []any{"name", "email", "message"},
		}),
		comp(prefix+"-contact-map", builder.TypeMap, map[string]any{"zoom": 14}),
	)
}

// catalog is the fixed library of business verticals.
var catalog = []IndustryTemplate{
	{
		ID:             "ecommerce",
		Name:           "E-Commerce Store",
		Description:    "Online store with product grid, categories, and cart-ready layout.",
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#f59e0b",
		Icon:           "shopping-bag",
		Features:       []string{"product-grid", "categories", "cart", "push"},
		Screens: []builder.Screen{
			screen("ecom-home", "Home", "home", true,
				hero("ecom-hero", "Fresh Products", "Everything you need, delivered"),
				spacer("ecom-sp1", builder.Space16),
				heading("ecom-featured", "Featured Categories"),
				grid("ecom-cat-grid", 2,
					card("ecom-cat-1", "New Arrivals"),
					card("ecom-cat-2", "Best Sellers"),
					card("ecom-cat-3", "On Sale"),
					card("ecom-cat-4", "Gift Ideas"),
				),
				spacer("ecom-sp2", builder.Space24),
				comp("ecom-products", builder.TypeProductGrid, map[string]any{
					"columns": 2,
					"gap":     string(builder.Space16),
				}),
			),
			screen("ecom-shop", "Shop", "shopping-cart", false,
				comp("ecom-shop-grid", builder.TypeProductGrid, map[string]any{"columns": 2}),
			),
			aboutScreen("ecom"),
			contactScreen("ecom"),
		},
	},
	{
		ID:             "restaurant",
		Name:           "Restaurant & Cafe",
		Description:    "Menu showcase with reservations and location details.",
		PrimaryColor:   "#b91c1c",
		SecondaryColor: "#fbbf24",
		Icon:           "utensils",
		Features:       []string{"menu", "reservations", "gallery", "push"},
		Screens: []builder.Screen{
			screen("rest-home", "Home", "home", true,
				hero("rest-hero", "Welcome", "Great food, made with love"),
				heading("rest-menu-head", "Our Menu"),
				comp("rest-menu", builder.TypeList, map[string]any{"style": "menu"}),
				spacer("rest-sp1", builder.Space24),
				button("rest-reserve", "Reserve a Table"),
			),
			screen("rest-gallery", "Gallery", "image", false,
				grid("rest-gallery-grid", 2,
					comp("rest-img-1", builder.TypeImage, map[string]any{"src": ""}),
					comp("rest-img-2", builder.TypeImage, map[string]any{"src": ""}),
				),
			),
			aboutScreen("rest"),
			contactScreen("rest"),
		},
	},
	{
		ID:             "salon",
		Name:           "Salon & Spa",
		Description:    "Service list with booking call-to-action and gallery.",
		PrimaryColor:   "#9d174d",
		SecondaryColor: "#fce7f3",
		Icon:           "scissors",
		Features:       []string{"services", "booking", "gallery"},
		Screens: []builder.Screen{
			screen("salon-home", "Home", "home", true,
				hero("salon-hero", "Welcome", "Look good, feel great"),
				heading("salon-services-head", "Our Services"),
				comp("salon-services", builder.TypeList, map[string]any{"style": "services"}),
				button("salon-book", "Book Appointment"),
			),
			aboutScreen("salon"),
			contactScreen("salon"),
		},
	},
	{
		ID:             "fitness",
		Name:           "Fitness & Gym",
		Description:    "Class schedule, trainer profiles, and membership plans.",
		PrimaryColor:   "#166534",
		SecondaryColor: "#bbf7d0",
		Icon:           "dumbbell",
		Features:       []string{"schedule", "trainers", "plans", "push"},
		Screens: []builder.Screen{
			screen("fit-home", "Home", "home", true,
				hero("fit-hero", "Welcome", "Train harder, live better"),
				heading("fit-classes-head", "Classes This Week"),
				comp("fit-classes", builder.TypeList, map[string]any{"style": "schedule"}),
				spacer("fit-sp1", builder.Space16),
				grid("fit-plans", 3,
					card("fit-plan-1", "Basic"),
					card("fit-plan-2", "Pro"),
					card("fit-plan-3", "Elite"),
				),
			),
			aboutScreen("fit"),
			contactScreen("fit"),
		},
	},
	{
		ID:             "education",
		Name:           "Education & Coaching",
		Description:    "Course catalog with enrollment and announcements.",
		PrimaryColor:   "#1d4ed8",
		SecondaryColor: "#dbeafe",
		Icon:           "graduation-cap",
		Features:       []string{"courses", "announcements", "push"},
		Screens: []builder.Screen{
			screen("edu-home", "Home", "home", true,
				hero("edu-hero", "Welcome", "Learn something new today"),
				heading("edu-courses-head", "Popular Courses"),
				grid("edu-courses", 2,
					card("edu-course-1", "Beginner"),
					card("edu-course-2", "Advanced"),
				),
			),
			aboutScreen("edu"),
			contactScreen("edu"),
		},
	},
	{
		ID:             "healthcare",
		Name:           "Clinic & Healthcare",
		Description:    "Appointment booking with doctor profiles and timings.",
		PrimaryColor:   "#0e7490",
		SecondaryColor: "#cffafe",
		Icon:           "stethoscope",
		Features:       []string{"appointments", "doctors", "timings"},
		Screens: []builder.Screen{
			screen("health-home", "Home", "home", true,
				hero("health-hero", "Welcome", "Care you can trust"),
				heading("health-doctors-head", "Our Doctors"),
				comp("health-doctors", builder.TypeList, map[string]any{"style": "profiles"}),
				button("health-book", "Book Appointment"),
			),
			aboutScreen("health"),
			contactScreen("health"),
		},
	},
	{
		ID:             "realestate",
		Name:           "Real Estate",
		Description:    "Property listings with photo carousels and inquiry form.",
		PrimaryColor:   "#92400e",
		SecondaryColor: "#fef3c7",
		Icon:           "building",
		Features:       []string{"listings", "gallery", "inquiries"},
		Screens: []builder.Screen{
			screen("re-home", "Home", "home", true,
				hero("re-hero", "Welcome", "Find your next home"),
				heading("re-listings-head", "Featured Properties"),
				comp("re-carousel", builder.TypeCarousel, map[string]any{"autoplay": true}),
				comp("re-listings", builder.TypeList, map[string]any{"style": "listings"}),
			),
			aboutScreen("re"),
			contactScreen("re"),
		},
	},
	{
		ID:             "travel",
		Name:           "Travel & Tours",
		Description:    "Tour packages with itineraries and booking inquiries.",
		PrimaryColor:   "#0f766e",
		SecondaryColor: "#ccfbf1",
		Icon:           "plane",
		Features:       []string{"packages", "itineraries", "inquiries", "push"},
		Screens: []builder.Screen{
			screen("travel-home", "Home", "home", true,
				hero("travel-hero", "Welcome", "Your next adventure starts here"),
				heading("travel-packages-head", "Popular Packages"),
				grid("travel-packages", 2,
					card("travel-pkg-1", "Weekend Getaway"),
					card("travel-pkg-2", "Grand Tour"),
				),
			),
			aboutScreen("travel"),
			contactScreen("travel"),
		},
	},
	{
		ID:             "grocery",
		Name:           "Grocery & Daily Needs",
		Description:    "Category-first storefront for daily essentials.",
		PrimaryColor:   "#15803d",
		SecondaryColor: "#dcfce7",
		Icon:           "shopping-basket",
		Features:       []string{"categories", "product-grid", "cart", "push"},
		Screens: []builder.Screen{
			screen("groc-home", "Home", "home", true,
				hero("groc-hero", "Fresh Products", "Daily essentials at your door"),
				heading("groc-cats-head", "Shop by Category"),
				grid("groc-cats", 3,
					card("groc-cat-1", "Fruits"),
					card("groc-cat-2", "Vegetables"),
					card("groc-cat-3", "Dairy"),
				),
				comp("groc-products", builder.TypeProductGrid, map[string]any{"columns": 2}),
			),
			aboutScreen("groc"),
			contactScreen("groc"),
		},
	},
	{
		ID:             "fashion",
		Name:           "Fashion & Boutique",
		Description:    "Lookbook-style storefront for apparel brands.",
		PrimaryColor:   "#1e1b4b",
		SecondaryColor: "#e0e7ff",
		Icon:           "shirt",
		Features:       []string{"lookbook", "product-grid", "cart"},
		Screens: []builder.Screen{
			screen("fash-home", "Home", "home", true,
				hero("fash-hero", "Fresh Products", "New season, new style"),
				comp("fash-carousel", builder.TypeCarousel, map[string]any{"autoplay": true}),
				comp("fash-products", builder.TypeProductGrid, map[string]any{"columns": 2}),
			),
			aboutScreen("fash"),
			contactScreen("fash"),
		},
	},
	{
		ID:             "electronics",
		Name:           "Electronics Store",
		Description:    "Detail-rich product storefront with comparison cards.",
		PrimaryColor:   "#111827",
		SecondaryColor: "#60a5fa",
		Icon:           "cpu",
		Features:       []string{"product-grid", "categories", "cart", "push"},
		Screens: []builder.Screen{
			screen("elec-home", "Home", "home", true,
				hero("elec-hero", "Fresh Products", "The latest tech, unboxed"),
				heading("elec-deals-head", "Today's Deals"),
				comp("elec-products", builder.TypeProductGrid, map[string]any{"columns": 2}),
			),
			aboutScreen("elec"),
			contactScreen("elec"),
		},
	},
	{
		ID:             "services",
		Name:           "Local Services",
		Description:    "Service list with quotes and testimonials for local pros.",
		PrimaryColor:   "#7c2d12",
		SecondaryColor: "#fed7aa",
		Icon:           "wrench",
		Features:       []string{"services", "quotes", "testimonials"},
		Screens: []builder.Screen{
			screen("svc-home", "Home", "home", true,
				hero("svc-hero", "Welcome", "Reliable help, right away"),
				heading("svc-list-head", "What We Do"),
				comp("svc-list", builder.TypeList, map[string]any{"style": "services"}),
				button("svc-quote", "Get a Quote"),
			),
			aboutScreen("svc"),
			contactScreen("svc"),
		},
	},
	{
		ID:             "portfolio",
		Name:           "Portfolio & Creator",
		Description:    "Showcase for creators with project gallery and social links.",
		PrimaryColor:   "#4c1d95",
		SecondaryColor: "#ede9fe",
		Icon:           "palette",
		Features:       []string{"gallery", "social", "inquiries"},
		Screens: []builder.Screen{
			screen("port-home", "Home", "home", true,
				hero("port-hero", "Welcome", "Work that speaks for itself"),
				grid("port-gallery", 2,
					comp("port-img-1", builder.TypeImage, map[string]any{"src": ""}),
					comp("port-img-2", builder.TypeImage, map[string]any{"src": ""}),
				),
				comp("port-social", builder.TypeSocialLinks, map[string]any{
					"links": []any{"instagram", "x", "youtube"},
				}),
			),
			aboutScreen("port"),
			contactScreen("port"),
		},
	},
}
