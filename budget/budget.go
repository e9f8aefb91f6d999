package budget

import (
	"errors"
	"fmt"
)

// Typographic estimation constants, calibrated against common
// monospace rendering. Changing them changes every downstream budget.
const (
	// AvgGlyphWidthFactor estimates average glyph width as a fraction
	// of the font size.
	AvgGlyphWidthFactor = 0.55

	// LineHeightFactor estimates line height as a multiple of the
	// font size.
	LineHeightFactor = 1.25

	// MinGlyphWidthPx is the floor for the estimated glyph width.
	MinGlyphWidthPx = 4.0

	// MinLineHeightPx is the floor for the estimated line height.
	MinLineHeightPx = 12.0
)

// Defaults for optional parameters.
const (
	DefaultFontSizePx   = 14
	DefaultRulerColumns = 80
	DefaultBuffer       = 0.9
)

// ErrInvalidParameter is returned for malformed numeric budget inputs.
var ErrInvalidParameter = errors.New("invalid budget parameter")

// Params are the inputs to a budget computation.
// Zero values for FontSizePx, RulerColumns, and Buffer take the
// package defaults.
type Params struct {
	WidthPx      int
	HeightPx     int
	FontSizePx   int
	RulerColumns int
	Buffer       float64
}

// withDefaults fills optional fields.
func (p Params) withDefaults() Params {
	if p.FontSizePx == 0 {
		p.FontSizePx = DefaultFontSizePx
	}
	if p.RulerColumns == 0 {
		p.RulerColumns = DefaultRulerColumns
	}
	if p.Buffer == 0 {
		p.Buffer = DefaultBuffer
	}
	return p
}

// validate reports the first invariant violation.
func (p Params) validate() error {
	switch {
	case p.WidthPx <= 0:
		return fmt.Errorf("%w: width_px must be > 0, got %d", ErrInvalidParameter, p.WidthPx)
	case p.HeightPx <= 0:
		return fmt.Errorf("%w: height_px must be > 0, got %d", ErrInvalidParameter, p.HeightPx)
	case p.FontSizePx <= 0:
		return fmt.Errorf("%w: font_size_px must be > 0, got %d", ErrInvalidParameter, p.FontSizePx)
	case p.RulerColumns <= 0:
		return fmt.Errorf("%w: ruler_columns must be > 0, got %d", ErrInvalidParameter, p.RulerColumns)
	case p.Buffer <= 0 || p.Buffer > 1:
		return fmt.Errorf("%w: buffer must be in (0, 1], got %v", ErrInvalidParameter, p.Buffer)
	}
	return nil
}

// Budget is the derived character capacity of a screen.
type Budget struct {
	// Columns is the raw column count from width and glyph size.
	Columns int

	// Lines is the line count from height and line height.
	Lines int

	// EffectiveColumns is Columns capped by the editor ruler.
	EffectiveColumns int

	// CharBudget is EffectiveColumns * Lines, before the buffer.
	CharBudget int

	// TargetChars is the usable character budget after the buffer.
	TargetChars int
}

// Compute derives a character budget from the given parameters.
// Pure and deterministic; returns ErrInvalidParameter for
// non-positive dimensions or a buffer outside (0, 1].
func Compute(p Params) (Budget, error) {
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return Budget{}, err
	}

	glyphWidth := float64(p.FontSizePx) * AvgGlyphWidthFactor
	if glyphWidth < MinGlyphWidthPx {
		glyphWidth = MinGlyphWidthPx
	}
	lineHeight := float64(p.FontSizePx) * LineHeightFactor
	if lineHeight < MinLineHeightPx {
		lineHeight = MinLineHeightPx
	}

	columns := int(float64(p.WidthPx) / glyphWidth)
	if columns < 1 {
		columns = 1
	}
	lines := int(float64(p.HeightPx) / lineHeight)
	if lines < 1 {
		lines = 1
	}

	effective := columns
	if effective > p.RulerColumns {
		effective = p.RulerColumns
	}

	charBudget := effective * lines
	return Budget{
		Columns:          columns,
		Lines:            lines,
		EffectiveColumns: effective,
		CharBudget:       charBudget,
		TargetChars:      int(float64(charBudget) * p.Buffer),
	}, nil
}

// String formats the budget for human consumption.
func (b Budget) String() string {
	return fmt.Sprintf("%d cols x %d lines (effective=%d) -> budget=%d target=%d",
		b.Columns, b.Lines, b.EffectiveColumns, b.CharBudget, b.TargetChars)
}
