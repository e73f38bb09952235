// Package web provides embedded static assets for the dashboard.
// In Docker builds web/static/ holds the compiled dashboard bundle;
// in local development it may only contain the stylesheet source.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree, served at /static/.
//
//go:embed all:static
var StaticFS embed.FS
