package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matchers maps every algorithm to its free function so agreement tests
// cover both entry points (free function and Algorithm.Index dispatch).
var matchers = map[Algorithm]func(text, pattern string) int{
	AlgorithmKMP:        IndexKMP,
	AlgorithmBoyerMoore: IndexBoyerMoore,
	AlgorithmRabinKarp:  IndexRabinKarp,
}

// =============================================================================
// Agreement Tests
// =============================================================================

func TestMatchers_AgreeOnAllScenarios(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		want    int
	}{
		{"match in middle", "ababcabcabababd", "ababd", 10},
		{"no match", "hello world", "xyz", NotFound},
		{"first of many occurrences", "aaaaaa", "aa", 0},
		{"text equals pattern", "match", "match", 0},
		{"empty pattern matches at start", "abc", "", 0},
		{"empty pattern in empty text", "", "", 0},
		{"pattern longer than text", "ab", "abc", NotFound},
		{"nonempty pattern in empty text", "", "a", NotFound},
		{"match at start", "foobarbaz", "foo", 0},
		{"match at very end", "foobarbaz", "baz", 6},
		{"single byte present", "abcdef", "d", 3},
		{"single byte absent", "abcdef", "z", NotFound},
		{"repetitive text", "aaaaab", "aab", 3},
		{"overlapping candidates", "abababab", "abab", 0},
		{"near miss then match", "abcabcabd", "abd", 6},
		{"utf-8 text byte offsets", "п'ять елементів", "елемент", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for algo, fn := range matchers {
				got := fn(tt.text, tt.pattern)
				assert.Equal(t, tt.want, got, "%s disagrees", algo)
				assert.Equal(t, tt.want, algo.Index(tt.text, tt.pattern), "%s dispatch disagrees", algo)
			}
		})
	}
}

func TestMatchers_AgreeWithStdlib(t *testing.T) {
	// Cross-check against strings.Index on generated repetitive inputs,
	// which stress the fallback paths of all three algorithms.
	texts := []string{
		strings.Repeat("ab", 200) + "c",
		strings.Repeat("a", 300),
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("abcab", 50) + "abcabd",
	}
	patterns := []string{"a", "ab", "ba", "abc", "abd", "aab", "dog", "cat", "abcabd", ""}

	for _, text := range texts {
		for _, pattern := range patterns {
			want := strings.Index(text, pattern)
			for algo, fn := range matchers {
				assert.Equal(t, want, fn(text, pattern),
					"%s(%q..., %q)", algo, text[:min(16, len(text))], pattern)
			}
		}
	}
}

// =============================================================================
// Algorithm Enumeration Tests
// =============================================================================

func TestAlgorithms_StableOrder(t *testing.T) {
	assert.Equal(t, []Algorithm{AlgorithmKMP, AlgorithmBoyerMoore, AlgorithmRabinKarp}, Algorithms())
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"kmp", AlgorithmKMP, false},
		{"knuth-morris-pratt", AlgorithmKMP, false},
		{"boyer-moore", AlgorithmBoyerMoore, false},
		{"bm", AlgorithmBoyerMoore, false},
		{"rabin-karp", AlgorithmRabinKarp, false},
		{"rk", AlgorithmRabinKarp, false},
		{"aho-corasick", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if tt.wantErr {
			require.Error(t, err, "ParseAlgorithm(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseAlgorithm(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestAlgorithm_DisplayName(t *testing.T) {
	assert.Equal(t, "Knuth-Morris-Pratt", AlgorithmKMP.DisplayName())
	assert.Equal(t, "Boyer-Moore", AlgorithmBoyerMoore.DisplayName())
	assert.Equal(t, "Rabin-Karp", AlgorithmRabinKarp.DisplayName())
	assert.Equal(t, "mystery", Algorithm("mystery").DisplayName())
}
