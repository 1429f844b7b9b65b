package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single char rounds up", "a", 1},
		{"exact multiple", "abcd", 1},
		{"one over", "abcde", 2},
		{"sentence", "hello world, this is text", 7},
		{"multibyte counts runes not bytes", "héllo", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.CountTokens(tt.text))
		})
	}
}
