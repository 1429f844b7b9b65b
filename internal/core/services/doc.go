// Package services contains the core ingestion orchestration.
//
// IngestService composes locator validation, version resolution,
// credential checking, fetching, normalisation and persistence into a
// single synchronous pipeline per invocation, returning a uniform result
// envelope. It depends only on the ports, never on concrete adapters.
package services
