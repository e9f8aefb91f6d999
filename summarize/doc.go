// Package summarize produces budget-constrained summaries and
// orchestrates them across device profiles and depth layers.
//
// The summarizer is greedy, order-preserving, and deterministic: it
// walks sentences in original order and keeps whole sentences while
// they fit the character ceiling, falling back to hard truncation
// when not even the first sentence fits. Sentences are never
// reordered or scored.
//
// MultiProfile applies the full pipeline for every requested
// (profile, layer) pair: budget derivation, layer partitioning,
// persona transformation, summarization. A failure for one profile
// never aborts the batch; it is recorded per profile so callers see
// partial success.
package summarize
