// Package core is the orchestrator: a single goroutine that owns the
// experiment state, paces frame acquisition and supervises the decode,
// track and encode workers.
//
// At most one task per stage is in flight. Every task carries a
// generation number; results whose generation no longer matches the
// stage slot were aborted and are dropped on arrival.
//
// Other goroutines talk to the orchestrator only through Command, State
// and AddImage, which travel over channels into the loop.
package core
