package persona

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/randalmurphal/sumkit/template"
)

// ErrUnknownPersona is returned for an unrecognized persona name.
var ErrUnknownPersona = errors.New("unknown persona")

// Location is a persona's framing placement policy.
type Location string

const (
	// Before prepends the framing to the source text, where it
	// competes with content for the budget.
	Before Location = "before"

	// After appends the framing to the finished summary, but only
	// when it still fits the ceiling.
	After Location = "after"

	// OmitOnSmallBudget skips the persona entirely for layers whose
	// ceiling cannot afford the framing plus minimal content. This
	// keeps verbose framing from crowding out short headlines.
	OmitOnSmallBudget Location = "omit_on_small_budget"
)

// MinContentChars is the minimum substantive content a layer must
// retain after persona overhead for the persona to participate.
const MinContentChars = 20

// Persona is a named content-transformation policy.
type Persona struct {
	Name string

	// Vocabulary maps source terms to audience terms. Keys must be
	// single tokens; multi-token keys never match.
	Vocabulary map[string]string

	// ContextPrefix frames the content for the audience. It may
	// contain {{profile}} and {{layer}} placeholders.
	ContextPrefix string

	// Examples are rendered as "Example: ..." lines in the framing.
	Examples []string

	ExamplesLocation Location
}

// Builtin personas in canonical order.
var builtins = []Persona{
	{
		Name:             "developer",
		Vocabulary:       map[string]string{"user": "end-user", "problem": "issue", "fix": "resolve"},
		Examples:         []string{"Focus on technical implementation details.", "Consider API design patterns."},
		ContextPrefix:    "As a software developer reviewing this content:",
		ExamplesLocation: After,
	},
	{
		Name:             "designer",
		Vocabulary:       map[string]string{"functionality": "user experience", "code": "interface"},
		Examples:         []string{"Consider visual hierarchy and layout.", "Focus on user interaction patterns."},
		ContextPrefix:    "From a UX/UI design perspective:",
		ExamplesLocation: Before,
	},
	{
		Name:             "manager",
		Vocabulary:       map[string]string{"technical": "strategic", "implementation": "execution"},
		Examples:         []string{"Consider business impact and timeline.", "Focus on resource allocation."},
		ContextPrefix:    "From a project management viewpoint:",
		ExamplesLocation: OmitOnSmallBudget,
	},
}

// BuiltinNames returns the builtin persona names in canonical order.
func BuiltinNames() []string {
	names := make([]string, len(builtins))
	for i, p := range builtins {
		names[i] = p.Name
	}
	return names
}

// Resolve returns the named builtin persona, or ErrUnknownPersona
// listing the valid names. An empty name resolves to no persona.
func Resolve(name string) (*Persona, error) {
	if name == "" {
		return nil, nil
	}
	for i := range builtins {
		if builtins[i].Name == name {
			p := builtins[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)",
		ErrUnknownPersona, name, strings.Join(BuiltinNames(), ", "))
}

// ApplyVocabulary substitutes mapped terms in a single deterministic
// left-to-right pass. Matching is whole-token and case-sensitive;
// replacements are not rescanned.
func (p *Persona) ApplyVocabulary(text string) string {
	if p == nil || len(p.Vocabulary) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	var word strings.Builder
	flush := func() {
		if word.Len() == 0 {
			return
		}
		token := word.String()
		if replacement, ok := p.Vocabulary[token]; ok {
			sb.WriteString(replacement)
		} else {
			sb.WriteString(token)
		}
		word.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
			continue
		}
		flush()
		sb.WriteRune(r)
	}
	flush()

	return sb.String()
}

// ExamplesText renders the persona's example lines as a block.
func (p *Persona) ExamplesText() string {
	if p == nil || len(p.Examples) == 0 {
		return ""
	}
	lines := make([]string, len(p.Examples))
	for i, example := range p.Examples {
		lines[i] = "Example: " + example
	}
	return strings.Join(lines, "\n")
}

// Overhead is the character cost of the persona's framing: prefix,
// example lines, and the separators between them.
func (p *Persona) Overhead() int {
	if p == nil {
		return 0
	}
	overhead := 0
	if p.ContextPrefix != "" {
		overhead += utf8.RuneCountInString(p.ContextPrefix) + 2
	}
	for _, example := range p.Examples {
		overhead += utf8.RuneCountInString("Example: "+example) + 1
	}
	if p.ContextPrefix != "" && len(p.Examples) > 0 {
		overhead += 2
	}
	return overhead
}

// framing builds the prefix-plus-examples block, rendering any
// placeholders in the prefix. A prefix that fails to render is used
// verbatim.
func (p *Persona) framing(vars map[string]any) string {
	prefix := p.ContextPrefix
	if strings.Contains(prefix, "{{") {
		if rendered, err := template.NewEngine().Render(prefix, vars); err == nil {
			prefix = rendered
		}
	}

	var parts []string
	if prefix != "" {
		parts = append(parts, prefix)
	}
	if examples := p.ExamplesText(); examples != "" {
		parts = append(parts, examples)
	}
	return strings.Join(parts, "\n\n")
}
