package match

// buildShiftTable computes the bad-character shift table for pattern.
//
// The table is a flat 256-entry array indexed by byte value: constant-time
// lookup, no hashing. Every byte starts at len(pattern) (the default shift
// for symbols absent from the pattern). Bytes occurring before the final
// position get the distance from their last such occurrence to the end of
// the pattern. The final byte keeps the default unless it occurred earlier,
// which is the "set if absent" rule from the classic formulation.
func buildShiftTable(pattern string) [256]int {
	var table [256]int
	m := len(pattern)
	for i := range table {
		table[i] = m
	}
	for i := 0; i < m-1; i++ {
		table[pattern[i]] = m - i - 1
	}
	return table
}

// IndexBoyerMoore returns the byte offset of the first occurrence of
// pattern in text using the Boyer-Moore bad-character heuristic, or
// NotFound.
//
// Only the bad-character rule is implemented; without the good-suffix rule
// the worst case is O(n*m) on highly repetitive inputs. This is a known
// performance ceiling of the simplified variant, not a correctness issue.
func IndexBoyerMoore(text, pattern string) int {
	n, m := len(text), len(pattern)
	if m == 0 {
		return 0
	}
	if m > n {
		return NotFound
	}

	table := buildShiftTable(pattern)
	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			return i
		}
		// Shift by the table entry for the text byte aligned with the
		// pattern's last position, not the mismatching byte.
		i += table[text[i+m-1]]
	}
	return NotFound
}
