package summarize

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/zeebo/blake3"
)

// fingerprintBytes is the fingerprint width: 4 bytes, 8 hex digits.
const fingerprintBytes = 4

// Fingerprint returns a short fixed-width content fingerprint of the
// text, for tracing a summary back to its source.
func Fingerprint(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:fingerprintBytes])
}

// WithFingerprint appends the source text's fingerprint to a summary
// as a trailing marker, but only when it fits the ceiling; otherwise
// the summary is returned unchanged. The fingerprint covers the
// original full text, not the summary.
func WithFingerprint(summary, source string, ceiling int) string {
	marker := "[hash:" + Fingerprint(source) + "]"
	candidate := marker
	if summary != "" {
		candidate = summary + " " + marker
	}
	if utf8.RuneCountInString(candidate) <= ceiling {
		return candidate
	}
	return summary
}
