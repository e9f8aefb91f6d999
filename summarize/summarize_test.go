package summarize

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSummarize_Greedy(t *testing.T) {
	text := "One two three. Four five. Six seven eight nine."

	tests := []struct {
		name     string
		ceiling  int
		expected string
	}{
		{
			name:     "whole text fits",
			ceiling:  100,
			expected: text,
		},
		{
			name:    "two sentences fit",
			ceiling: 25,
			// "One two three." (14) + " " + "Four five." (10) = 25.
			expected: "One two three. Four five.",
		},
		{
			name:     "one sentence fits",
			ceiling:  20,
			expected: "One two three.",
		},
		{
			name:     "stops at first overflow",
			ceiling:  24,
			expected: "One two three.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(text, tt.ceiling, 0)
			if got != tt.expected {
				t.Errorf("Summarize() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	// Already-short text comes back unchanged: no ellipsis, original
	// whitespace preserved.
	text := "Short enough.\nWith a newline."
	got := Summarize(text, 100, 0)
	if got != text {
		t.Errorf("Summarize() = %q, expected unchanged %q", got, text)
	}
}

func TestSummarize_MaxSentences(t *testing.T) {
	text := "A one. B two. C three. D four."

	got := Summarize(text, 1000, 2)
	if got != "A one. B two." {
		t.Errorf("Summarize() = %q, expected first two sentences", got)
	}

	// Character ceiling governs even when the sentence cap would
	// allow more.
	got = Summarize(text, 6, 2)
	if got != "A one." {
		t.Errorf("Summarize() = %q, expected %q", got, "A one.")
	}
}

func TestSummarize_TruncationFallback(t *testing.T) {
	// First sentence alone exceeds the ceiling.
	text := "This opening sentence is far too long for the budget."

	got := Summarize(text, 20, 0)
	if got != "This opening sent..." {
		t.Errorf("Summarize() = %q", got)
	}

	// No sentence boundaries at all.
	got = Summarize(strings.Repeat("x", 50), 10, 0)
	if got != strings.Repeat("x", 7)+"..." {
		t.Errorf("Summarize() = %q", got)
	}

	// Below the marker threshold the cut is hard, no ellipsis.
	got = Summarize(strings.Repeat("x", 50), 3, 0)
	if got != "xxx" {
		t.Errorf("Summarize() = %q, expected %q", got, "xxx")
	}
}

func TestSummarize_Degenerate(t *testing.T) {
	if got := Summarize("", 100, 0); got != "" {
		t.Errorf("empty input: got %q", got)
	}
	if got := Summarize("some text", 0, 0); got != "" {
		t.Errorf("zero ceiling: got %q", got)
	}
	if got := Summarize("some text", -5, 0); got != "" {
		t.Errorf("negative ceiling: got %q", got)
	}
	if got := Summarize("   ", 100, 0); got != "" {
		t.Errorf("whitespace input: got %q", got)
	}
}

func TestSummarize_NeverExceedsCeiling(t *testing.T) {
	texts := []string{
		"One two three. Four five. Six seven eight nine.",
		strings.Repeat("word ", 200),
		strings.Repeat("Sentence here. ", 50),
		"short",
	}
	for _, text := range texts {
		for ceiling := 1; ceiling <= 60; ceiling++ {
			got := Summarize(text, ceiling, 0)
			if n := utf8.RuneCountInString(got); n > ceiling {
				t.Fatalf("ceiling %d: result %d runes: %q", ceiling, n, got)
			}
		}
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps. ", 30)
	first := Summarize(text, 100, 0)
	for i := 0; i < 10; i++ {
		if got := Summarize(text, 100, 0); got != first {
			t.Fatalf("Summarize not deterministic")
		}
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("some content")
	if len(fp) != 8 {
		t.Errorf("Fingerprint length = %d, expected 8", len(fp))
	}
	if fp != Fingerprint("some content") {
		t.Error("Fingerprint not deterministic")
	}
	if fp == Fingerprint("other content") {
		t.Error("distinct content produced identical fingerprints")
	}
}

func TestWithFingerprint(t *testing.T) {
	source := "the original full text"
	marker := "[hash:" + Fingerprint(source) + "]"

	// Fits: appended as a trailing marker.
	got := WithFingerprint("Summary.", source, 100)
	if got != "Summary. "+marker {
		t.Errorf("WithFingerprint() = %q", got)
	}

	// Does not fit: summary unchanged, ceiling never violated.
	got = WithFingerprint("Summary.", source, 10)
	if got != "Summary." {
		t.Errorf("WithFingerprint() = %q, expected unchanged summary", got)
	}

	// Empty summary still gets the marker when it fits.
	got = WithFingerprint("", source, 100)
	if got != marker {
		t.Errorf("WithFingerprint() = %q, expected bare marker", got)
	}
}

func BenchmarkSummarize(b *testing.B) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Summarize(text, 500, 0)
	}
}
