package budget

import "github.com/randalmurphal/sumkit/tokens"

// TokenBudget augments a character budget with estimated token
// ceilings. It is a post-processing view over a computed Budget and
// never feeds back into summarization.
type TokenBudget struct {
	Budget

	// CharsPerToken is the ratio the estimate was derived with.
	CharsPerToken float64

	// TokenBudgetEst is the estimated token count for CharBudget.
	TokenBudgetEst int

	// TokenTargetEst is the estimated token count for TargetChars.
	TokenTargetEst int
}

// TokenAware converts a character budget into a token-aware one using
// the given chars-per-token ratio. A ratio <= 0 falls back to the
// default (4.0). Calibrate the ratio from sample text with
// tokens.EstimateRatio.
func TokenAware(b Budget, charsPerToken float64) TokenBudget {
	if charsPerToken <= 0 {
		charsPerToken = tokens.DefaultCharsPerToken
	}
	return TokenBudget{
		Budget:         b,
		CharsPerToken:  charsPerToken,
		TokenBudgetEst: tokens.CharsToTokens(b.CharBudget, charsPerToken),
		TokenTargetEst: tokens.CharsToTokens(b.TargetChars, charsPerToken),
	}
}
