// Package tokens estimates token counts from character counts.
//
// The core summarization engine works purely in characters; tokens
// exist only as an optional post-processing hook for callers that
// feed summaries into token-limited systems. The estimation is
// ratio-based: a chars-per-token ratio is either supplied directly,
// calibrated from sample text with EstimateRatio, or defaulted to 4.0
// (a reasonable figure for English prose).
package tokens
