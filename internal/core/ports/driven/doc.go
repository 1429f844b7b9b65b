// Package driven defines the outbound ports of the ingestion core.
//
// These interfaces are implemented by adapters (connectors, sinks, stores)
// and consumed by the core services. The core never depends on a concrete
// adapter, only on these contracts.
package driven
