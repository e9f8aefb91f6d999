package template

import (
	"errors"
	"testing"
)

func TestEngine_Render(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name      string
		template  string
		variables map[string]any
		expected  string
	}{
		{
			name:      "simple variable",
			template:  "Hello {{name}}",
			variables: map[string]any{"name": "World"},
			expected:  "Hello World",
		},
		{
			name:      "multiple variables",
			template:  "For the {{profile}} screen at {{layer}} depth:",
			variables: map[string]any{"profile": "phone", "layer": "headline"},
			expected:  "For the phone screen at headline depth:",
		},
		{
			name:      "no placeholders",
			template:  "As a software developer reviewing this content:",
			variables: nil,
			expected:  "As a software developer reviewing this content:",
		},
		{
			name:      "upper helper",
			template:  "{{upper profile}}",
			variables: map[string]any{"profile": "laptop"},
			expected:  "LAPTOP",
		},
		{
			name:      "trim helper",
			template:  "{{trim text}}",
			variables: map[string]any{"text": "  padded  "},
			expected:  "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Render(tt.template, tt.variables)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Render() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestEngine_Render_Empty(t *testing.T) {
	engine := NewEngine()
	_, err := engine.Render("", nil)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestEngine_Render_MissingVariable(t *testing.T) {
	engine := NewEngine()
	// Missing variables render as "<no value>" rather than failing;
	// callers that need strictness use Parse + ValidateVariables.
	result, err := engine.Render("Hello {{name}}", map[string]any{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if result != "Hello <no value>" {
		t.Errorf("Render() = %q", result)
	}
}

func TestEngine_Parse(t *testing.T) {
	engine := NewEngine()

	vars, err := engine.Parse("For {{profile}} at {{layer}}: {{upper persona}}")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	expected := []string{"profile", "layer", "persona"}
	if len(vars) != len(expected) {
		t.Fatalf("Parse() = %v, expected %v", vars, expected)
	}
	for i := range expected {
		if vars[i] != expected[i] {
			t.Errorf("Parse()[%d] = %q, expected %q", i, vars[i], expected[i])
		}
	}
}

func TestEngine_AddFunc(t *testing.T) {
	engine := NewEngine()
	engine.AddFunc("shout", func(s string) string { return s + "!" })

	// Custom helpers need explicit dot syntax.
	result, err := engine.Render("{{shout .word}}", map[string]any{"word": "go"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if result != "go!" {
		t.Errorf("Render() = %q, expected %q", result, "go!")
	}
}

func TestValidateVariables(t *testing.T) {
	err := ValidateVariables([]string{"a", "b"}, map[string]any{"a": 1})
	if !errors.Is(err, ErrVariable) {
		t.Errorf("expected ErrVariable, got %v", err)
	}

	err = ValidateVariables([]string{"a"}, map[string]any{"a": 1})
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestConvertSyntax(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain variable",
			input:    "{{name}}",
			expected: "{{.name}}",
		},
		{
			name:     "keyword untouched",
			input:    "{{end}}",
			expected: "{{end}}",
		},
		{
			name:     "helper call",
			input:    "{{upper name}}",
			expected: "{{upper .name}}",
		},
		{
			name:     "helper with literal arg",
			input:    "{{truncate text 40}}",
			expected: "{{truncate .text 40}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertSyntax(tt.input); got != tt.expected {
				t.Errorf("convertSyntax(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
