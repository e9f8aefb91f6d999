package tokens

import (
	"unicode"
	"unicode/utf8"
)

// Ratio bounds. Estimated ratios outside this range indicate degenerate
// samples (all punctuation, single repeated rune) and are clamped.
const (
	MinCharsPerToken = 1.0
	MaxCharsPerToken = 8.0
)

// EstimateRatio derives an average chars-per-token ratio from sample
// text. Tokens are approximated as word runs plus standalone
// punctuation, which tracks subword tokenizers closely enough for
// budget estimation. With no usable samples the default ratio (4.0)
// is returned.
func EstimateRatio(samples []string) float64 {
	var totalRunes, totalTokens int
	for _, sample := range samples {
		totalRunes += utf8.RuneCountInString(sample)
		totalTokens += approximateTokens(sample)
	}
	if totalTokens == 0 {
		return DefaultCharsPerToken
	}

	ratio := float64(totalRunes) / float64(totalTokens)
	if ratio < MinCharsPerToken {
		return MinCharsPerToken
	}
	if ratio > MaxCharsPerToken {
		return MaxCharsPerToken
	}
	return ratio
}

// approximateTokens counts word runs and standalone punctuation marks.
func approximateTokens(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if !inWord {
				count++
				inWord = true
			}
		case unicode.IsSpace(r):
			inWord = false
		default:
			// Punctuation and symbols usually tokenize on their own.
			count++
			inWord = false
		}
	}
	return count
}
