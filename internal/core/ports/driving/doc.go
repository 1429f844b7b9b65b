// Package driving defines the inbound ports of the ingestion core.
//
// These interfaces are implemented by core services and consumed by
// driving adapters (CLI).
package driving
