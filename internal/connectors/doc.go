// Package connectors provides implementations of the Connector port
// for the supported external source families. Each connector knows how
// to validate locators for, and fetch raw records from, one source
// family (Confluence spaces, GitHub repositories).
package connectors
