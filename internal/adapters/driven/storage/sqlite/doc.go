// Package sqlite provides a SQLite-backed ingestion run ledger.
//
// The ledger records every ingestion invocation, success or failure, so
// re-runnable ingestions can be audited and destination collections traced
// back to the run that produced them. Uses the pure-Go modernc.org/sqlite
// driver; schema is managed by embedded migrations.
package sqlite
