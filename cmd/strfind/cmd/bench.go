package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/strfind/strfind/internal/config"
	"github.com/strfind/strfind/internal/errors"
	"github.com/strfind/strfind/internal/output"
	"github.com/strfind/strfind/internal/textload"
	"github.com/strfind/strfind/internal/ui"
	"github.com/strfind/strfind/pkg/bench"
)

// benchOptions holds CLI flags for bench.
type benchOptions struct {
	configPath string
	texts      []string
	present    string
	absent     string
	trials     int
	format     string // "text", "json"
	color      string // "auto", "always", "never"
}

func newBenchCmd() *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the search algorithms against each other",
		Long: `Benchmark all three algorithms on two texts with a pattern that
occurs in them and a pattern that does not, then rank the algorithms
by their overall average search time.

Inputs come from flags or from a .strfind.yaml config file; flags win.

Examples:
  strfind bench --texts article1.txt,article2.txt --present "елемент" --absent "notinthetext"
  strfind bench --config bench.yaml --trials 500
  strfind bench --texts a.txt,b.txt --present foo --absent bar --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultConfigFile, "Config file path")
	cmd.Flags().StringSliceVar(&opts.texts, "texts", nil, "Two text files to benchmark against")
	cmd.Flags().StringVar(&opts.present, "present", "", "Pattern known to occur in the texts")
	cmd.Flags().StringVar(&opts.absent, "absent", "", "Pattern known not to occur in the texts")
	cmd.Flags().IntVar(&opts.trials, "trials", 0, "Repetitions per algorithm and combination (default from config)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json")
	cmd.Flags().StringVar(&opts.color, "color", "", "Color mode: auto, always, never (default from config)")

	return cmd
}

func runBench(cmd *cobra.Command, opts benchOptions) error {
	out := output.New(cmd.OutOrStdout())

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	mergeBenchFlags(cfg, opts)

	if len(cfg.Bench.Texts) != 2 {
		return errors.ValidationError(
			fmt.Sprintf("bench needs exactly two texts, got %d", len(cfg.Bench.Texts)), nil).
			WithSuggestion("pass --texts file1,file2 or set bench.texts in the config file")
	}
	if cfg.Bench.PresentPattern == "" || cfg.Bench.AbsentPattern == "" {
		return errors.ValidationError("bench needs a present and an absent pattern", nil).
			WithSuggestion("pass --present and --absent or set them in the config file")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	loader, err := textload.New()
	if err != nil {
		return err
	}
	texts, err := loader.LoadAll(cmd.Context(), cfg.Bench.Texts...)
	if err != nil {
		return err
	}

	combos := buildCombinations(cfg.Bench.Texts, texts, cfg.Bench.PresentPattern, cfg.Bench.AbsentPattern)

	slog.Info("bench_started",
		slog.Int("trials", cfg.Bench.Trials),
		slog.Int("combinations", len(combos)))

	runner, err := bench.New(bench.WithTrials(cfg.Bench.Trials))
	if err != nil {
		return err
	}
	report, err := runner.Run(cmd.Context(), combos)
	if err != nil {
		return err
	}

	slog.Info("bench_complete", slog.String("fastest", string(report.Fastest().Algorithm)))

	if cfg.Output.Color == "" {
		cfg.Output.Color = "auto"
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	styles := ui.StylesFor(cfg.Output.Color, os.Stdout)
	out.Plain(ui.RenderReport(report, styles))
	out.Newline()
	out.Plain(ui.RenderFastest(report, styles))
	return nil
}

// mergeBenchFlags overlays set flags onto the loaded config.
func mergeBenchFlags(cfg *config.Config, opts benchOptions) {
	if len(opts.texts) > 0 {
		cfg.Bench.Texts = opts.texts
	}
	if opts.present != "" {
		cfg.Bench.PresentPattern = opts.present
	}
	if opts.absent != "" {
		cfg.Bench.AbsentPattern = opts.absent
	}
	if opts.trials > 0 {
		cfg.Bench.Trials = opts.trials
	}
	if opts.color != "" {
		cfg.Output.Color = opts.color
	}
}

// buildCombinations pairs every text with the present and absent patterns,
// mirroring the four-way comparison the bench report ranks on.
func buildCombinations(paths, texts []string, present, absent string) []bench.Combination {
	combos := make([]bench.Combination, 0, len(texts)*2)
	for i, text := range texts {
		name := filepath.Base(paths[i])
		combos = append(combos,
			bench.Combination{Name: name + " (present)", Text: text, Pattern: present},
			bench.Combination{Name: name + " (absent)", Text: text, Pattern: absent},
		)
	}
	return combos
}
