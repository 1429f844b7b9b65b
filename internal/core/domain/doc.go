// Package domain defines the core business entities for the ingestion pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceLocator: A validated, classified reference to an external source
//   - RawRecord: One fetched content unit before normalisation
//   - Document: The canonical ingested unit consumed downstream
//   - IngestionResult: The envelope returned for every ingestion run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
