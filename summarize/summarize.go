package summarize

import (
	"strings"
	"unicode/utf8"

	"github.com/randalmurphal/sumkit/truncate"
)

// Summarize fits text into a character ceiling by greedy sentence
// accumulation. maxSentences caps the sentence count when > 0; the
// character ceiling always governs when both constrain. The result
// never exceeds ceiling runes.
//
// Degenerate inputs are valid: empty text or a non-positive ceiling
// yield the empty string, never an error.
func Summarize(text string, ceiling int, maxSentences int) string {
	if ceiling <= 0 {
		return ""
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	sentences := SplitSentences(text)

	// Already-short text passes through untouched, never gaining an
	// ellipsis or losing its original whitespace.
	if utf8.RuneCountInString(text) <= ceiling &&
		(maxSentences <= 0 || len(sentences) <= maxSentences) {
		return text
	}

	var kept []string
	length := 0
	for _, sentence := range sentences {
		if maxSentences > 0 && len(kept) >= maxSentences {
			break
		}
		joiner := 0
		if len(kept) > 0 {
			joiner = 1
		}
		// Stop at the first sentence that would overflow; earliest
		// sentences win, never reordered or scored.
		if length+joiner+utf8.RuneCountInString(sentence) > ceiling {
			break
		}
		kept = append(kept, sentence)
		length += joiner + utf8.RuneCountInString(sentence)
	}

	if len(kept) == 0 {
		return truncate.ToLength(text, ceiling)
	}
	return strings.Join(kept, " ")
}
