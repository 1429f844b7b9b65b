// Package tokenizer provides the default token count estimator.
//
// The estimator is intentionally a heuristic: token counts in documents
// are informational hints for downstream chunking, not billing-grade
// numbers. Callers that need an exact tokenizer supply their own
// implementation of the Tokenizer port.
package tokenizer

import (
	"unicode/utf8"

	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// charsPerToken approximates the average characters per token for
// English-like text and code.
const charsPerToken = 4

// Ensure Estimator implements the interface.
var _ driven.Tokenizer = (*Estimator)(nil)

// Estimator is a character-ratio token count estimator.
type Estimator struct{}

// New creates a new estimator.
func New() *Estimator {
	return &Estimator{}
}

// CountTokens estimates the token count of text.
func (e *Estimator) CountTokens(text string) int {
	if text == "" {
		return 0
	}
	n := utf8.RuneCountInString(text)
	// Round up so short non-empty strings count as at least one token.
	return (n + charsPerToken - 1) / charsPerToken
}
