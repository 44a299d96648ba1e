package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildShiftTable(t *testing.T) {
	t.Run("distinct final byte keeps default shift", func(t *testing.T) {
		table := buildShiftTable("abcd")

		assert.Equal(t, 3, table['a'])
		assert.Equal(t, 2, table['b'])
		assert.Equal(t, 1, table['c'])
		// 'd' only occurs at the final position, so it keeps the default.
		assert.Equal(t, 4, table['d'])
	})

	t.Run("final byte seen earlier keeps its earlier shift", func(t *testing.T) {
		table := buildShiftTable("abca")

		// 'a' occurs at index 0 and at the final position; the last
		// occurrence before the end (index 0) wins: shift 3.
		assert.Equal(t, 3, table['a'])
		assert.Equal(t, 2, table['b'])
		assert.Equal(t, 1, table['c'])
	})

	t.Run("repeated byte keeps last occurrence before the end", func(t *testing.T) {
		table := buildShiftTable("aabab")

		// 'a' last occurs (excluding the end) at index 3: shift 1.
		// 'b' last occurs (excluding the end) at index 2: shift 2.
		assert.Equal(t, 1, table['a'])
		assert.Equal(t, 2, table['b'])
	})

	t.Run("absent bytes default to pattern length", func(t *testing.T) {
		table := buildShiftTable("needle")

		for b := 0; b < 256; b++ {
			if strings.IndexByte("needle", byte(b)) >= 0 {
				continue
			}
			assert.Equal(t, 6, table[b], "byte %q", byte(b))
		}
	})

	t.Run("single byte pattern", func(t *testing.T) {
		// No bytes before the final position: every entry stays at 1.
		table := buildShiftTable("x")
		for b := 0; b < 256; b++ {
			assert.Equal(t, 1, table[b])
		}
	})
}

func TestIndexBoyerMoore_SkipsAndBacktracks(t *testing.T) {
	// The mismatching window at i=0 shares its last byte with the pattern,
	// producing a small shift; the matcher must still land on index 10.
	assert.Equal(t, 10, IndexBoyerMoore("ababcabcabababd", "ababd"))

	// Worst-case repetitive input: correctness holds even though the
	// bad-character heuristic degrades to one-position shifts here.
	text := strings.Repeat("a", 128) + "b"
	assert.Equal(t, 126, IndexBoyerMoore(text, "aab"))
	assert.Equal(t, NotFound, IndexBoyerMoore(strings.Repeat("a", 128), "aab"))
}
