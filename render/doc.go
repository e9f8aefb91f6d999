// Package render formats multi-profile summarization results for
// terminal and machine consumption.
//
// Three text formats cover the common cases: Stacked sections for
// reading, Compact one-line-per-summary for grepping, and indented
// JSON for piping into other tools. Board renders a styled triage
// board comparing every profile side by side, one table per layer.
package render
