// Package github implements the Connector port for GitHub repositories.
// It validates repository URLs, resolves a requested branch against the
// repository's branch listing (falling back to main/master), and fetches
// the top level of one branch's file tree with a bounded number of
// concurrent blob fetches.
package github
