package persona

import (
	"strings"
	"unicode/utf8"
)

// Plan describes how a persona participates in one layer's summary:
// the text handed to the summarizer, the effective ceiling the
// summarizer must honor, and any framing attached afterward.
type Plan struct {
	// Text is the source text to summarize, with vocabulary applied
	// and framing prepended when the placement calls for it.
	Text string

	// Ceiling is the effective character ceiling for summarization.
	// It is never above the layer's ceiling.
	Ceiling int

	// Appendix is attached after summarization via Attach, only when
	// it still fits.
	Appendix string

	// Skipped reports that the persona was omitted for this layer.
	Skipped bool
}

// MakePlan decides the persona's participation for one layer.
// Headline layers always get vocabulary-only treatment so headlines
// stay terse. vars feeds {{profile}}/{{layer}} placeholders in the
// context prefix. A nil persona plans the text through unchanged.
func (p *Persona) MakePlan(text string, ceiling int, headline bool, vars map[string]any) Plan {
	if p == nil {
		return Plan{Text: text, Ceiling: ceiling, Skipped: true}
	}

	transformed := p.ApplyVocabulary(text)
	if headline {
		return Plan{Text: transformed, Ceiling: ceiling}
	}

	switch p.ExamplesLocation {
	case Before:
		if framing := p.framing(vars); framing != "" {
			transformed = framing + "\n\n" + transformed
		}
		return Plan{Text: transformed, Ceiling: ceiling}

	case After:
		return Plan{Text: transformed, Ceiling: ceiling, Appendix: p.framing(vars)}

	default: // OmitOnSmallBudget
		if ceiling < p.Overhead()+MinContentChars {
			return Plan{Text: text, Ceiling: ceiling, Skipped: true}
		}
		effective := ceiling - p.Overhead()
		if effective < 1 {
			effective = 1
		}
		if framing := p.framing(vars); framing != "" {
			transformed = framing + "\n\n" + transformed
		}
		return Plan{Text: transformed, Ceiling: effective}
	}
}

// Attach appends the appendix to a finished summary when the combined
// text fits the ceiling; otherwise the summary is returned unchanged.
func Attach(summary, appendix string, ceiling int) string {
	if appendix == "" {
		return summary
	}
	combined := strings.TrimSpace(summary) + "\n\n" + appendix
	if utf8.RuneCountInString(combined) <= ceiling {
		return combined
	}
	return summary
}
