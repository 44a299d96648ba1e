package cmd

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strfind/strfind/internal/errors"
	"github.com/strfind/strfind/internal/output"
	"github.com/strfind/strfind/internal/textload"
	"github.com/strfind/strfind/pkg/match"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	algorithm string
	file      string
	text      string
	format    string // "text", "json"
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <pattern>",
		Short: "Find the first occurrence of a pattern in a text",
		Long: `Search a text for the first occurrence of a pattern.

The result is the zero-based byte offset of the first occurrence,
or -1 when the pattern does not occur.

Examples:
  strfind search "needle" --file haystack.txt
  strfind search "needle" --text "needle in a haystack"
  strfind search "needle" --file haystack.txt --algorithm boyer-moore
  strfind search "needle" --file haystack.txt --algorithm all --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "kmp", "Algorithm: kmp, boyer-moore, rabin-karp, or all")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Text file to search")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Literal text to search")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json")

	return cmd
}

// searchResult is one algorithm's answer, for JSON output.
type searchResult struct {
	Algorithm string `json:"algorithm"`
	Index     int    `json:"index"`
	Found     bool   `json:"found"`
}

func runSearch(cmd *cobra.Command, pattern string, opts searchOptions) error {
	out := output.New(cmd.OutOrStdout())

	text, err := resolveText(opts)
	if err != nil {
		return err
	}

	algos, err := resolveAlgorithms(opts.algorithm)
	if err != nil {
		return err
	}

	slog.Info("search_started",
		slog.Int("text_bytes", len(text)),
		slog.Int("pattern_bytes", len(pattern)),
		slog.String("algorithm", opts.algorithm))

	results := make([]searchResult, len(algos))
	for i, algo := range algos {
		idx := algo.Index(text, pattern)
		results[i] = searchResult{
			Algorithm: string(algo),
			Index:     idx,
			Found:     idx != match.NotFound,
		}
	}

	// With --algorithm all, every matcher must agree; a disagreement is a
	// bug in this tool, not in the input.
	for _, r := range results[1:] {
		if r.Index != results[0].Index {
			return errors.New(errors.ErrCodeInternal, "matchers disagree", nil).
				WithDetail(results[0].Algorithm, strconv.Itoa(results[0].Index)).
				WithDetail(r.Algorithm, strconv.Itoa(r.Index))
		}
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		algo := match.Algorithm(r.Algorithm)
		if r.Found {
			out.Statusf("🔍", "%s: %q found at byte index %d", algo.DisplayName(), pattern, r.Index)
		} else {
			out.Statusf("🔍", "%s: %q not found (index %d)", algo.DisplayName(), pattern, r.Index)
		}
	}
	return nil
}

// resolveText picks the search text from --text or --file.
func resolveText(opts searchOptions) (string, error) {
	if opts.text != "" && opts.file != "" {
		return "", errors.ValidationError("--text and --file are mutually exclusive", nil).
			WithSuggestion("pass the text inline or in a file, not both")
	}
	if opts.text != "" {
		return opts.text, nil
	}
	if opts.file == "" {
		return "", errors.ValidationError("no text to search", nil).
			WithSuggestion("pass --file <path> or --text <string>")
	}

	loader, err := textload.New()
	if err != nil {
		return "", err
	}
	return loader.Load(opts.file)
}

// resolveAlgorithms expands the --algorithm flag, with "all" meaning every
// supported algorithm.
func resolveAlgorithms(name string) ([]match.Algorithm, error) {
	if name == "all" {
		return match.Algorithms(), nil
	}

	algo, err := match.ParseAlgorithm(name)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnknownAlgorithm, err.Error(), err).
			WithSuggestion("use kmp, boyer-moore, rabin-karp, or all")
	}
	return []match.Algorithm{algo}, nil
}
