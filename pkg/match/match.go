package match

import (
	"fmt"
)

// NotFound is the sentinel returned when pattern does not occur in text.
const NotFound = -1

// Algorithm identifies one of the supported search algorithms.
type Algorithm string

const (
	AlgorithmKMP        Algorithm = "kmp"
	AlgorithmBoyerMoore Algorithm = "boyer-moore"
	AlgorithmRabinKarp  Algorithm = "rabin-karp"
)

// Algorithms returns all supported algorithms in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmKMP, AlgorithmBoyerMoore, AlgorithmRabinKarp}
}

// ParseAlgorithm converts a user-supplied name into an Algorithm.
// Accepts a few common aliases (e.g. "bm", "rk").
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "kmp", "knuth-morris-pratt":
		return AlgorithmKMP, nil
	case "boyer-moore", "bm":
		return AlgorithmBoyerMoore, nil
	case "rabin-karp", "rk":
		return AlgorithmRabinKarp, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q (want kmp, boyer-moore, or rabin-karp)", name)
	}
}

// DisplayName returns a human-readable name for reports.
func (a Algorithm) DisplayName() string {
	switch a {
	case AlgorithmKMP:
		return "Knuth-Morris-Pratt"
	case AlgorithmBoyerMoore:
		return "Boyer-Moore"
	case AlgorithmRabinKarp:
		return "Rabin-Karp"
	default:
		return string(a)
	}
}

// Index dispatches to the matcher for this algorithm.
// Returns the byte offset of the first occurrence of pattern in text,
// or NotFound.
func (a Algorithm) Index(text, pattern string) int {
	switch a {
	case AlgorithmBoyerMoore:
		return IndexBoyerMoore(text, pattern)
	case AlgorithmRabinKarp:
		return IndexRabinKarp(text, pattern)
	default:
		return IndexKMP(text, pattern)
	}
}
