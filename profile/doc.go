// Package profile manages named device profiles for budget derivation.
//
// A profile bundles the screen and font parameters one viewing context
// needs: pixel dimensions, font size, editor ruler columns, and a
// safety buffer. Four builtin profiles (laptop, phone, slides, tweet)
// ship with published parameters; user profiles load from JSON, YAML,
// or TOML documents.
//
// A Registry is immutable after construction and safe for concurrent
// readers. WatchDir delivers fresh registry snapshots when a profile
// directory changes; it never mutates a published registry.
package profile
