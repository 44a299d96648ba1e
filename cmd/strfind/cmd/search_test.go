package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strfind/strfind/internal/errors"
)

func TestSearch_InlineText_Found(t *testing.T) {
	out, err := executeCommand(t, "search", "ababd", "--text", "ababcabcabababd")

	require.NoError(t, err)
	assert.Contains(t, out, "found at byte index 10")
	assert.Contains(t, out, "Knuth-Morris-Pratt")
}

func TestSearch_InlineText_NotFound(t *testing.T) {
	out, err := executeCommand(t, "search", "xyz", "--text", "hello world")

	require.NoError(t, err)
	assert.Contains(t, out, "not found (index -1)")
}

func TestSearch_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "haystack.txt")
	require.NoError(t, os.WriteFile(path, []byte("needle in a haystack"), 0o644))

	out, err := executeCommand(t, "search", "haystack", "--file", path, "--algorithm", "boyer-moore")

	require.NoError(t, err)
	assert.Contains(t, out, "Boyer-Moore")
	assert.Contains(t, out, "found at byte index 12")
}

func TestSearch_AllAlgorithmsAgree(t *testing.T) {
	out, err := executeCommand(t, "search", "aa", "--text", "aaaaaa", "--algorithm", "all")

	require.NoError(t, err)
	assert.Contains(t, out, "Knuth-Morris-Pratt")
	assert.Contains(t, out, "Boyer-Moore")
	assert.Contains(t, out, "Rabin-Karp")
	assert.Equal(t, 3, countOccurrences(out, "found at byte index 0"))
}

func TestSearch_JSONFormat(t *testing.T) {
	out, err := executeCommand(t, "search", "fox", "--text", "the quick brown fox", "--algorithm", "all", "--format", "json")

	require.NoError(t, err)

	var results []searchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, 16, r.Index)
		assert.True(t, r.Found)
	}
}

func TestSearch_EmptyPattern(t *testing.T) {
	// cobra accepts the empty arg; the empty pattern matches at index 0.
	out, err := executeCommand(t, "search", "", "--text", "abc", "--algorithm", "all")

	require.NoError(t, err)
	assert.Equal(t, 3, countOccurrences(out, "found at byte index 0"))
}

func TestSearch_NoInput(t *testing.T) {
	_, err := executeCommand(t, "search", "pattern")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestSearch_TextAndFileExclusive(t *testing.T) {
	_, err := executeCommand(t, "search", "p", "--text", "x", "--file", "y.txt")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestSearch_UnknownAlgorithm(t *testing.T) {
	_, err := executeCommand(t, "search", "p", "--text", "x", "--algorithm", "aho-corasick")

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnknownAlgorithm, errors.GetCode(err))
}

func TestSearch_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "search", "p", "--file", filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetCode(err))
}

func countOccurrences(s, substr string) int {
	return strings.Count(s, substr)
}
