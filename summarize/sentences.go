package summarize

import (
	"strings"
	"unicode"
)

// SplitSentences splits text into an ordered sequence of sentences.
// A sentence ends at a terminal '.', '!', or '?' followed by
// whitespace or end of text. Abbreviations like "e.g." split early;
// that is an accepted limitation of the heuristic, not corrected.
// Text without any boundary comes back as a single sentence.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if sentence := strings.TrimSpace(string(runes[start : i+1])); sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + 1
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}
