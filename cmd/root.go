package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AndrewConway/make-exam-numbers/internal/app"
	"github.com/AndrewConway/make-exam-numbers/internal/config"
	pkglog "github.com/AndrewConway/make-exam-numbers/pkg/log"
)

func init() {
	rootCmd.Flags().Int64("seed", 0, "random seed; 0 picks one from the current time")
	rootCmd.Flags().StringArray("existing", nil, "file of previously issued codes to keep distance from (repeatable)")
	rootCmd.Flags().String("output-dir", "", "directory receiving the prefix_<PREFIX>.txt files")
	rootCmd.Flags().Bool("parallel", false, "generate groups concurrently instead of in argument order")
	rootCmd.Flags().Int("max-attempts", 0, "give up on a group after this many candidate draws; 0 retries forever")
	rootCmd.Flags().Bool("quiet", false, "suppress the per-attempt progress marks")
	rootCmd.Flags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.Flags().Bool("pretty", false, "human-readable log output instead of JSON")
}

var rootCmd = &cobra.Command{
	Use:   "make-exam-numbers <min_hamming_distance> <digits> [prefix:count ...]",
	Short: "Generate groups of numeric codes that keep a minimum Hamming distance apart",
	Long: `Generates fixed-length numeric identification codes, optionally prefixed,
where every pair of codes in a group differs in at least the given number
of digit positions. Each group is written to prefix_<PREFIX>.txt in the
output directory, one code per line.

Without any prefix:count pairs a single group of 100 codes with the empty
prefix is generated. Progress is written to stdout, one mark per attempt:
"." for a rejected candidate, "+" for an accepted one.

Examples:
  make-exam-numbers 3 5
  make-exam-numbers 3 7 S0:250 S1:250 --seed 42
  make-exam-numbers 2 6 A:100 --existing prefix_A.txt --output-dir out`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	minDistance, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("min distance %q is not a number", args[0])
	}
	digits, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("digits %q is not a number", args[1])
	}

	groups := make([]app.GroupSpec, 0, len(args)-2)
	for _, arg := range args[2:] {
		group, err := app.ParseGroupSpec(arg)
		if err != nil {
			return err
		}
		groups = append(groups, group)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags take precedence over config file and environment.
	outputDir := cfg.Output.Dir
	if cmd.Flags().Changed("output-dir") {
		outputDir, _ = cmd.Flags().GetString("output-dir")
	}
	logLevel := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		logLevel, _ = cmd.Flags().GetString("log-level")
	}
	pretty := cfg.Log.Pretty
	if cmd.Flags().Changed("pretty") {
		pretty, _ = cmd.Flags().GetBool("pretty")
	}
	quiet := !cfg.Progress.Enabled
	if cmd.Flags().Changed("quiet") {
		quiet, _ = cmd.Flags().GetBool("quiet")
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	existing, _ := cmd.Flags().GetStringArray("existing")
	parallel, _ := cmd.Flags().GetBool("parallel")
	maxAttempts, _ := cmd.Flags().GetInt("max-attempts")

	pkglog.Init(pkglog.Config{
		Level:       logLevel,
		Pretty:      pretty,
		ServiceName: "make-exam-numbers",
	})
	logger := pkglog.RunLogger()

	// Arguments are parsed; anything failing from here on is a runtime
	// problem, not a usage mistake.
	cmd.SilenceUsage = true

	opts := app.Options{
		MinDistance:   minDistance,
		Digits:        digits,
		Groups:        groups,
		Seed:          seed,
		ExistingPaths: existing,
		OutputDir:     outputDir,
		Parallel:      parallel,
		MaxAttempts:   maxAttempts,
		Quiet:         quiet,
		Logger:        logger,
	}
	return app.Run(cmd.Context(), opts)
}
