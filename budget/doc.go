// Package budget derives character budgets from screen and font
// parameters.
//
// A budget answers the question "how many characters fit on this
// screen": glyph width and line height are estimated from the font
// size, columns are capped by the editor ruler, and a safety buffer
// is applied against UI chrome. The computation is pure and
// deterministic; identical inputs always produce identical budgets.
//
// TokenAware extends a computed budget with an estimated token
// ceiling for callers that feed summaries into token-limited systems.
package budget
