// Package truncate provides character-aware text truncation strategies.
//
// All limits are measured in runes (Unicode code points), never bytes,
// so multibyte text truncates cleanly. Truncation markers are reserved
// out of the limit: a truncated result never exceeds the requested
// maximum, marker included.
//
// The summarizer uses ToLength as its hard-truncation fallback when no
// whole sentence fits a ceiling.
package truncate
