package template

import "regexp"

// goTemplateKeywords are Go template reserved words that should not be
// converted to variable references.
var goTemplateKeywords = map[string]bool{
	"else":     true,
	"end":      true,
	"if":       true,
	"range":    true,
	"with":     true,
	"define":   true,
	"template": true,
	"block":    true,
}

// helperNames lists the built-in helper function names.
var helperNames = map[string]bool{
	"upper":    true,
	"lower":    true,
	"trim":     true,
	"truncate": true,
	"wrap":     true,
}

var (
	varPattern    = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\}\}`)
	helperPattern = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)((?:\s+\S+)*)\}\}`)
)

// convertSyntax converts {{variable}} placeholders to Go template
// syntax ({{.variable}}). Helper calls like {{upper name}} become
// {{upper .name}}. Keywords and helper names themselves are left
// untouched.
func convertSyntax(input string) string {
	result := varPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := match[2 : len(match)-2]
		if goTemplateKeywords[name] || helperNames[name] {
			return match
		}
		return "{{." + name + "}}"
	})

	result = helperPattern.ReplaceAllStringFunc(result, func(match string) string {
		parts := helperPattern.FindStringSubmatch(match)
		helper, arg, rest := parts[1], parts[2], parts[3]
		if !helperNames[helper] {
			return match
		}
		return "{{" + helper + " ." + arg + rest + "}}"
	})

	return result
}

// extractVariables extracts variable names from a template.
// Returns a deduplicated list of variable names found.
func extractVariables(templateStr string) []string {
	seen := make(map[string]bool)
	var result []string

	add := func(name string) {
		if goTemplateKeywords[name] || helperNames[name] || seen[name] {
			return
		}
		seen[name] = true
		result = append(result, name)
	}

	for _, match := range varPattern.FindAllStringSubmatch(templateStr, -1) {
		add(match[1])
	}
	for _, match := range helperPattern.FindAllStringSubmatch(templateStr, -1) {
		if helperNames[match[1]] {
			add(match[2])
		}
	}

	return result
}
