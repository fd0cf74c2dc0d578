// Package protocol defines the domain messages exchanged between the
// orchestrator and its components.
//
// The wire format is protobuf: the schema lives in
// proto/trackcore/v1/trackcore.proto and the generated messages and gRPC
// stubs in the pb subpackage. This package converts between the two and
// wraps the generated clients so callers work with domain types only.
package protocol

//go:generate sh -c "cd ../.. && buf generate"
