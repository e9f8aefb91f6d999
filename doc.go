// Package sumkit converts free text into budget-constrained summaries
// tailored to target viewing contexts.
//
// sumkit is a standalone toolkit designed to be imported à la carte.
// Each subpackage can be used independently:
//
//   - budget: Character budget derivation from screen/font parameters
//   - profile: Named device profiles (builtin + user-supplied documents)
//   - layer: Depth policies (headline, one_screen, deep) and budget partitioning
//   - persona: Audience-specific vocabulary and framing transforms
//   - summarize: Greedy sentence-level summarization and the multi-profile orchestrator
//   - render: JSON, compact, stacked, and triage-board renderings of results
//   - tokens: Character-to-token ratio estimation for the token budget hook
//   - truncate: Character-aware text truncation strategies
//   - template: Placeholder rendering for persona framing
//
// # Quick Start
//
// Budget derivation:
//
//	import "github.com/randalmurphal/sumkit/budget"
//	b, _ := budget.Compute(budget.Params{WidthPx: 1920, HeightPx: 1080})
//	fmt.Println(b.TargetChars)
//
// Multi-profile summarization:
//
//	import (
//		"github.com/randalmurphal/sumkit/profile"
//		"github.com/randalmurphal/sumkit/summarize"
//	)
//	reg := profile.NewRegistry()
//	result, _ := summarize.MultiProfile(text, summarize.Request{
//		Registry: reg,
//		Profiles: []string{"phone", "laptop"},
//		Layers:   []string{"headline", "one_screen", "deep"},
//	})
//
// # Design Philosophy
//
// sumkit follows these principles:
//
//   - Each package usable independently
//   - Pure, deterministic core: identical inputs yield identical output
//   - Registries are immutable after construction and safe for concurrent readers
//   - A summary never exceeds its ceiling, persona framing and fingerprints included
package sumkit
