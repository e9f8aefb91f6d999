package truncate

import "unicode/utf8"

// Strategy defines how text is truncated.
type Strategy int

const (
	// FromEnd removes content from the end (default).
	FromEnd Strategy = iota

	// FromMiddle removes content from the middle, keeping start and end.
	FromMiddle

	// FromStart removes content from the start.
	FromStart
)

// DefaultEndMarker is the default marker for end truncation.
const DefaultEndMarker = "..."

// DefaultMiddleMarker is the default marker for middle truncation.
const DefaultMiddleMarker = "\n...[content truncated]...\n"

// DefaultStartMarker is the default marker for start truncation.
const DefaultStartMarker = "..."

// Truncator truncates text to fit within character limits.
type Truncator struct {
	strategy Strategy
	marker   string
}

// New creates a truncator with the given strategy.
func New(strategy Strategy) *Truncator {
	marker := DefaultEndMarker
	if strategy == FromMiddle {
		marker = DefaultMiddleMarker
	}
	return &Truncator{
		strategy: strategy,
		marker:   marker,
	}
}

// NewFromEnd creates a truncator that removes content from the end.
func NewFromEnd() *Truncator {
	return New(FromEnd)
}

// NewFromMiddle creates a truncator that removes content from the middle.
func NewFromMiddle() *Truncator {
	return New(FromMiddle)
}

// NewFromStart creates a truncator that removes content from the start.
func NewFromStart() *Truncator {
	return New(FromStart)
}

// WithMarker sets a custom truncation marker.
func (t *Truncator) WithMarker(marker string) *Truncator {
	t.marker = marker
	return t
}

// Truncate reduces the text to fit within maxChars runes.
// Returns the truncated text and whether truncation occurred.
func (t *Truncator) Truncate(text string, maxChars int) (string, bool) {
	if utf8.RuneCountInString(text) <= maxChars {
		return text, false
	}

	switch t.strategy {
	case FromMiddle:
		return t.truncateMiddle(text, maxChars), true
	case FromStart:
		return t.truncateStart(text, maxChars), true
	default:
		return t.truncateEnd(text, maxChars), true
	}
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Marker returns the truncator's marker.
func (t *Truncator) Marker() string {
	return t.marker
}
