// Package match implements exact substring search over byte-oriented text.
//
// Three classic algorithms are provided, each as a pure function of
// (text, pattern) with no shared state:
//
//   - Knuth–Morris–Pratt: prefix-function table, single left-to-right pass
//   - Boyer–Moore: bad-character heuristic only (no good-suffix rule)
//   - Rabin–Karp: polynomial rolling hash with mandatory verification
//
// All matchers agree on their contract: they return the byte offset of the
// first occurrence of pattern in text, NotFound if there is none, and 0 for
// an empty pattern (the empty string matches at the start). Tables and hash
// state are built fresh per call and discarded on return.
package match
