package profile

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/sumkit/budget"
)

// Sentinel errors for profile operations.
var (
	// ErrProfileNotFound is returned when a name matches neither a
	// builtin profile nor a loadable document.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidProfile is returned when a profile document is
	// malformed or violates the profile invariants.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Profile is an immutable bundle of screen and font parameters.
type Profile struct {
	Name         string  `json:"name" yaml:"name" toml:"name"`
	WidthPx      int     `json:"width_px" yaml:"width_px" toml:"width_px"`
	HeightPx     int     `json:"height_px" yaml:"height_px" toml:"height_px"`
	FontSizePx   int     `json:"font_size_px,omitempty" yaml:"font_size_px,omitempty" toml:"font_size_px,omitempty"`
	RulerColumns int     `json:"editor_ruler_columns,omitempty" yaml:"editor_ruler_columns,omitempty" toml:"editor_ruler_columns,omitempty"`
	Buffer       float64 `json:"buffer,omitempty" yaml:"buffer,omitempty" toml:"buffer,omitempty"`
}

// withDefaults fills optional document fields.
func (p Profile) withDefaults() Profile {
	if p.FontSizePx == 0 {
		p.FontSizePx = budget.DefaultFontSizePx
	}
	if p.RulerColumns == 0 {
		p.RulerColumns = budget.DefaultRulerColumns
	}
	if p.Buffer == 0 {
		p.Buffer = budget.DefaultBuffer
	}
	return p
}

// Validate reports the first invariant violation.
func (p Profile) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	case p.WidthPx <= 0:
		return fmt.Errorf("%w: %s: width_px must be > 0", ErrInvalidProfile, p.Name)
	case p.HeightPx <= 0:
		return fmt.Errorf("%w: %s: height_px must be > 0", ErrInvalidProfile, p.Name)
	case p.FontSizePx <= 0:
		return fmt.Errorf("%w: %s: font_size_px must be > 0", ErrInvalidProfile, p.Name)
	case p.RulerColumns <= 0:
		return fmt.Errorf("%w: %s: editor_ruler_columns must be > 0", ErrInvalidProfile, p.Name)
	case p.Buffer <= 0 || p.Buffer > 1:
		return fmt.Errorf("%w: %s: buffer must be in (0, 1]", ErrInvalidProfile, p.Name)
	}
	return nil
}

// BudgetParams converts the profile into budget computation inputs.
func (p Profile) BudgetParams() budget.Params {
	return budget.Params{
		WidthPx:      p.WidthPx,
		HeightPx:     p.HeightPx,
		FontSizePx:   p.FontSizePx,
		RulerColumns: p.RulerColumns,
		Buffer:       p.Buffer,
	}
}

// Builtin profile parameters are an external contract: changing them
// changes every downstream budget.
var builtins = []Profile{
	{Name: "laptop", WidthPx: 1920, HeightPx: 1080, FontSizePx: 14, RulerColumns: 80, Buffer: 0.9},
	{Name: "phone", WidthPx: 375, HeightPx: 667, FontSizePx: 12, RulerColumns: 40, Buffer: 0.85},
	{Name: "slides", WidthPx: 1024, HeightPx: 768, FontSizePx: 18, RulerColumns: 60, Buffer: 0.8},
	{Name: "tweet", WidthPx: 280, HeightPx: 400, FontSizePx: 14, RulerColumns: 40, Buffer: 0.9},
}

// BuiltinNames returns the builtin profile names in canonical order.
func BuiltinNames() []string {
	names := make([]string, len(builtins))
	for i, p := range builtins {
		names[i] = p.Name
	}
	return names
}

// Builtin returns the named builtin profile.
func Builtin(name string) (Profile, bool) {
	for _, p := range builtins {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
