package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/AndrewConway/make-exam-numbers/internal/codefile"
	"github.com/AndrewConway/make-exam-numbers/internal/generator"
	pkglog "github.com/AndrewConway/make-exam-numbers/pkg/log"
)

// Progress marks, one per attempted candidate.
const (
	markAccepted = "+"
	markRejected = "."
)

// Run executes a whole generation run: it validates the options, loads the
// avoid lists, generates every group, and writes one file per group. Any
// error is terminal for the run; files of groups that already completed
// stay on disk.
func Run(ctx context.Context, opts Options) error {
	opts = withDefaults(opts)
	if err := validate(opts); err != nil {
		return err
	}
	logger := opts.Logger

	existing, err := loadExisting(opts, logger)
	if err != nil {
		return err
	}

	seed := generator.PickSeed(opts.Seed)
	logger.Info().Int64(pkglog.FieldSeed, seed).Msg("random seed chosen")

	if opts.Parallel {
		err = runParallel(ctx, opts, seed, existing, logger)
	} else {
		err = runSequential(ctx, opts, seed, existing, logger)
	}
	if err != nil {
		return err
	}

	logger.Info().Int("groups", len(opts.Groups)).Msg("all groups complete")
	return nil
}

// runSequential processes groups in argument order, drawing every candidate
// from one shared random stream.
func runSequential(ctx context.Context, opts Options, seed int64, existing []string, logger zerolog.Logger) error {
	gen, err := generator.New(generator.NewRNG(seed), opts.Digits, opts.MinDistance)
	if err != nil {
		return err
	}
	gen.MaxAttempts = opts.MaxAttempts

	for _, group := range opts.Groups {
		if err := runGroup(ctx, opts, gen, group, existing, logger); err != nil {
			return err
		}
	}
	return nil
}

// runParallel generates groups concurrently. Groups are independent: each
// gets its own accepted set and its own random stream derived from the run
// seed and the group's position.
func runParallel(ctx context.Context, opts Options, seed int64, existing []string, logger zerolog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, group := range opts.Groups {
		gen, err := generator.New(generator.NewRNG(seed+int64(i)), opts.Digits, opts.MinDistance)
		if err != nil {
			return err
		}
		gen.MaxAttempts = opts.MaxAttempts

		g.Go(func() error {
			return runGroup(gctx, opts, gen, group, existing, logger)
		})
	}
	return g.Wait()
}

// runGroup fills one group and writes its file once the group is complete.
func runGroup(ctx context.Context, opts Options, gen *generator.Generator, group GroupSpec, existing []string, logger zerolog.Logger) error {
	glog := logger.With().
		Str(pkglog.FieldPrefix, group.Prefix).
		Int(pkglog.FieldRequested, group.Count).
		Logger()
	glog.Info().Msg("processing group")

	avoid := filterByLength(existing, len(group.Prefix)+opts.Digits)

	attempts, rejected := 0, 0
	progress := func(accepted bool) {
		attempts++
		mark := markAccepted
		if !accepted {
			rejected++
			mark = markRejected
		}
		if !opts.Quiet {
			fmt.Fprint(opts.ProgressWriter, mark)
		}
		if accepted {
			glog.Debug().Int(pkglog.FieldAccepted, attempts-rejected).Msg("code accepted")
		}
	}

	codes, err := gen.GenerateGroup(ctx, group.Prefix, group.Count, avoid, progress)
	if err != nil {
		return err
	}

	path, err := codefile.WriteGroup(opts.OutputDir, group.Prefix, codes)
	if err != nil {
		return err
	}

	glog.Info().
		Int(pkglog.FieldAccepted, len(codes)).
		Int(pkglog.FieldAttempts, attempts).
		Int(pkglog.FieldRejected, rejected).
		Str(pkglog.FieldPath, path).
		Msg("group complete")
	return nil
}

// loadExisting reads every avoid-list file and flags entries that cannot
// constrain any group of this run.
func loadExisting(opts Options, logger zerolog.Logger) ([]string, error) {
	var existing []string
	for _, path := range opts.ExistingPaths {
		codes, err := codefile.ReadCodes(path)
		if err != nil {
			return nil, err
		}
		existing = append(existing, codes...)
		logger.Info().
			Str(pkglog.FieldPath, path).
			Int(pkglog.FieldEntries, len(codes)).
			Msg("read existing codes")
	}

	if unmatched := countUnmatchedLengths(opts, existing); unmatched > 0 {
		logger.Warn().
			Int(pkglog.FieldEntries, unmatched).
			Msg("existing codes whose length matches no group of this run; they cannot constrain new codes")
	}
	return existing, nil
}

// countUnmatchedLengths counts existing codes whose total length differs
// from every group's prefix+digits length. Such entries are skipped during
// admissibility checks, which usually means the run was configured with a
// different digit count than the one that produced them.
func countUnmatchedLengths(opts Options, existing []string) int {
	lengths := make(map[int]bool, len(opts.Groups))
	for _, group := range opts.Groups {
		lengths[len(group.Prefix)+opts.Digits] = true
	}

	unmatched := 0
	for _, code := range existing {
		if !lengths[len(code)] {
			unmatched++
		}
	}
	return unmatched
}

func filterByLength(codes []string, length int) []string {
	if len(codes) == 0 {
		return nil
	}
	filtered := make([]string, 0, len(codes))
	for _, code := range codes {
		if len(code) == length {
			filtered = append(filtered, code)
		}
	}
	return filtered
}
