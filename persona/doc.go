// Package persona rewrites text for a target audience before or
// after summarization.
//
// A persona is tagged data, not behavior: a vocabulary map, a context
// prefix, example lines, and a placement policy. Three builtin
// personas ship (developer, designer, manager).
//
// Vocabulary substitution is whole-token and case-sensitive: a mapped
// term only matches a complete word, never a fragment inside a larger
// one, and "User" is not "user". Both rules hold uniformly across all
// personas.
//
// Placement decides how the persona's framing interacts with the
// character ceiling; see Location. Whatever the policy, the framing
// never pushes the final text past the layer's ceiling.
package persona
