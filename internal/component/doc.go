// Package component launches worker components and keeps one gRPC client
// per capability (detector, matcher, recorder).
//
// Connections are opened in the background. Each attempt is a Pending
// whose result the owner applies with Resolve, so the connection table is
// only ever changed by the goroutine that owns the Registry.
package component
