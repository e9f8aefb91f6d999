package template

import (
	"strings"
	"text/template"

	"github.com/randalmurphal/sumkit/truncate"
)

// defaultFuncs returns the built-in template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"trim":     strings.TrimSpace,
		"truncate": truncate.ToLength,
		"wrap":     wrap,
	}
}

// wrap wraps text at the specified width, breaking on word boundaries.
// If width <= 0, the string is returned unchanged.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	var result strings.Builder
	var lineLen int

	words := strings.Fields(s)
	for _, word := range words {
		if lineLen+len(word) > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}
		if lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}
		result.WriteString(word)
		lineLen += len(word)
	}

	return result.String()
}
