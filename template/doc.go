// Package template renders text containing {{variable}} placeholders.
//
// It backs persona context prefixes, which may reference the profile
// and layer they are being rendered for:
//
//	engine := template.NewEngine()
//	out, _ := engine.Render("For the {{profile}} screen:", map[string]any{
//		"profile": "phone",
//	})
//
// The {{variable}} syntax is converted to Go template syntax before
// execution, and a small set of string helpers (upper, lower, trim,
// truncate, wrap) is available.
package template
