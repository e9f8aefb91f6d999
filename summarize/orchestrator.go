package summarize

import (
	"fmt"

	"github.com/randalmurphal/sumkit/budget"
	"github.com/randalmurphal/sumkit/layer"
	"github.com/randalmurphal/sumkit/persona"
	"github.com/randalmurphal/sumkit/profile"
)

// Request describes one multi-profile summarization call.
type Request struct {
	// Registry resolves profile names. Nil means builtins only.
	Registry *profile.Registry

	// Profiles are profile names or document paths, in output order.
	Profiles []string

	// Layers are layer names in output order. Empty means all
	// builtin layers.
	Layers []string

	// Persona optionally names a builtin persona.
	Persona string
}

// LayerResult is one generated summary and the ceiling it honored.
type LayerResult struct {
	Layer   string
	Ceiling int
	Text    string
}

// ProfileResult holds every layer summary for one profile.
type ProfileResult struct {
	Profile profile.Profile
	Budget  budget.Budget
	Layers  []LayerResult
}

// ProfileError records a per-profile failure inside a batch.
type ProfileError struct {
	Profile string
	Err     error
}

func (e ProfileError) Error() string {
	return fmt.Sprintf("profile %q: %v", e.Profile, e.Err)
}

func (e ProfileError) Unwrap() error {
	return e.Err
}

// Result maps profiles to layer summaries, preserving request order
// in both dimensions. Failures carries per-profile errors; a batch
// with failures still reports every successful profile.
type Result struct {
	Profiles []ProfileResult
	Failures []ProfileError
}

// Get looks up the summary for one (profile, layer) pair.
func (r *Result) Get(profileName, layerName string) (string, bool) {
	for _, pr := range r.Profiles {
		if pr.Profile.Name != profileName {
			continue
		}
		for _, lr := range pr.Layers {
			if lr.Layer == layerName {
				return lr.Text, true
			}
		}
	}
	return "", false
}

// MultiProfile generates a summary for every requested
// (profile, layer) pair. Unknown layers or personas fail the whole
// request; a failure resolving or budgeting one profile is recorded
// in Result.Failures and the batch continues.
func MultiProfile(text string, req Request) (*Result, error) {
	reg := req.Registry
	if reg == nil {
		reg = profile.NewRegistry()
	}

	layerNames := req.Layers
	if len(layerNames) == 0 {
		layerNames = layer.BuiltinNames()
	}
	layers, err := layer.Resolve(layerNames)
	if err != nil {
		return nil, err
	}

	per, err := persona.Resolve(req.Persona)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, name := range req.Profiles {
		prof, err := reg.Load(name)
		if err != nil {
			result.Failures = append(result.Failures, ProfileError{Profile: name, Err: err})
			continue
		}

		b, err := budget.Compute(prof.BudgetParams())
		if err != nil {
			result.Failures = append(result.Failures, ProfileError{Profile: name, Err: err})
			continue
		}

		pr := ProfileResult{Profile: prof, Budget: b}
		for _, alloc := range layer.Partition(b.TargetChars, layers) {
			pr.Layers = append(pr.Layers, summarizeLayer(text, prof.Name, alloc, per))
		}
		result.Profiles = append(result.Profiles, pr)
	}

	return result, nil
}

// Layered generates summaries for every layer against a single
// character budget, without profile resolution. It backs single-shot
// callers that already computed a budget.
func Layered(text string, totalBudget int, layerNames []string, per *persona.Persona) ([]LayerResult, error) {
	if len(layerNames) == 0 {
		layerNames = layer.BuiltinNames()
	}
	layers, err := layer.Resolve(layerNames)
	if err != nil {
		return nil, err
	}

	var results []LayerResult
	for _, alloc := range layer.Partition(totalBudget, layers) {
		results = append(results, summarizeLayer(text, "", alloc, per))
	}
	return results, nil
}

// summarizeLayer runs persona planning, summarization, fingerprint,
// and appendix attachment for one allocation. The returned text never
// exceeds the allocation's ceiling.
func summarizeLayer(text, profileName string, alloc layer.Allocation, per *persona.Persona) LayerResult {
	headline := alloc.Layer.Name == "headline"
	plan := per.MakePlan(text, alloc.Ceiling, headline, map[string]any{
		"profile": profileName,
		"layer":   alloc.Layer.Name,
	})

	summary := Summarize(plan.Text, plan.Ceiling, alloc.Layer.MaxSentences)
	if alloc.Layer.IncludeHash {
		summary = WithFingerprint(summary, text, plan.Ceiling)
	}
	summary = persona.Attach(summary, plan.Appendix, alloc.Ceiling)

	return LayerResult{
		Layer:   alloc.Layer.Name,
		Ceiling: alloc.Ceiling,
		Text:    summary,
	}
}
