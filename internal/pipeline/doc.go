// Package pipeline runs one tracking step: detect features in a frame,
// place them in the arena, and hand them to a matcher.
//
// The step owns no state. The orchestrator runs it on a worker goroutine
// and merges the Result on its own loop.
package pipeline
