package match

// buildPrefixTable computes the prefix function (LPS table) for pattern.
// lps[i] is the length of the longest proper prefix of pattern[:i+1] that
// is also a suffix of it, so 0 <= lps[i] <= i always holds.
func buildPrefixTable(pattern string) []int {
	lps := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); i++ {
		for length > 0 && pattern[i] != pattern[length] {
			length = lps[length-1]
		}
		if pattern[i] == pattern[length] {
			length++
		}
		lps[i] = length
	}
	return lps
}

// IndexKMP returns the byte offset of the first occurrence of pattern in
// text using Knuth-Morris-Pratt, or NotFound. The text cursor never moves
// backward; total time is O(n+m).
func IndexKMP(text, pattern string) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	lps := buildPrefixTable(pattern)
	j := 0
	for i := 0; i < n; i++ {
		for j > 0 && text[i] != pattern[j] {
			j = lps[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == m {
			return i - m + 1
		}
	}
	return NotFound
}
