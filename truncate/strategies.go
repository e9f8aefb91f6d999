package truncate

import (
	"strings"
	"unicode/utf8"
)

// truncateEnd keeps the start of the text.
func (t *Truncator) truncateEnd(text string, maxChars int) string {
	markerLen := utf8.RuneCountInString(t.marker)
	target := maxChars - markerLen
	if target <= 0 {
		return hardCut(t.marker, maxChars)
	}

	runes := []rune(text)
	return string(runes[:target]) + t.marker
}

// truncateMiddle keeps both ends of the text.
func (t *Truncator) truncateMiddle(text string, maxChars int) string {
	markerLen := utf8.RuneCountInString(t.marker)
	target := maxChars - markerLen
	if target <= 0 {
		return hardCut(t.marker, maxChars)
	}

	runes := []rune(text)
	head := target / 2
	tail := target - head

	var sb strings.Builder
	sb.WriteString(string(runes[:head]))
	sb.WriteString(t.marker)
	sb.WriteString(string(runes[len(runes)-tail:]))
	return sb.String()
}

// truncateStart keeps the end of the text.
func (t *Truncator) truncateStart(text string, maxChars int) string {
	markerLen := utf8.RuneCountInString(t.marker)
	target := maxChars - markerLen
	if target <= 0 {
		return hardCut(t.marker, maxChars)
	}

	runes := []rune(text)
	return t.marker + string(runes[len(runes)-target:])
}

// hardCut trims s to at most maxChars runes with no marker.
func hardCut(s string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
