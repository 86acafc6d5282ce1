package memory

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

func encoder() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			// Offline fallback: nil encoder switches CountTokens to a
			// whitespace approximation.
			return
		}
		tk = enc
	})
	return tk
}

// CountTokens estimates the token footprint of text.
func CountTokens(text string) int {
	if enc := encoder(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return len(strings.Fields(text))
}

// TrimToBudget drops whole lines from the front of text until it fits the
// token budget. The front holds the least relevant retrieval snippets, so
// trimming preserves what matters most.
func TrimToBudget(text string, budget int) string {
	if budget <= 0 || CountTokens(text) <= budget {
		return text
	}

	lines := strings.Split(text, "\n")
	for len(lines) > 1 {
		lines = lines[1:]
		candidate := strings.Join(lines, "\n")
		if CountTokens(candidate) <= budget {
			return candidate
		}
	}
	return lines[0]
}
