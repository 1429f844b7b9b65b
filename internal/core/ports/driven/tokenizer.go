package driven

// Tokenizer estimates the token count of a text body.
// Treated as an external collaborator: a pure function string -> count.
type Tokenizer interface {
	// CountTokens returns the estimated token count for text.
	CountTokens(text string) int
}
