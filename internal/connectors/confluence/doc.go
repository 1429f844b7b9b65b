// Package confluence implements the Connector port for Confluence wiki
// spaces. It accepts three locator shapes (hosted atlassian.net, custom
// domain, legacy human-readable /display/ paths), enumerates every page in
// a space through the Confluence REST API and converts the storage-format
// HTML bodies to markdown text.
package confluence
