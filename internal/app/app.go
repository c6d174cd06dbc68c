package app

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// defaultGroupCount is used when a run names no groups at all: one group
// with the empty prefix and this many codes.
const defaultGroupCount = 100

// GroupSpec pairs an output prefix with how many codes it needs.
type GroupSpec struct {
	Prefix string
	Count  int
}

// Options configures a full generation run.
type Options struct {
	// MinDistance is the minimum Hamming distance every pair of codes in a
	// group must keep. 0 disables the check.
	MinDistance int
	// Digits is the length of the numeric part of every code.
	Digits int
	// Groups are processed in order; empty means one implicit group with the
	// empty prefix and defaultGroupCount codes.
	Groups []GroupSpec

	// Seed fixes the random stream for reproducible runs; 0 picks one from
	// the current time. The effective seed is always logged.
	Seed int64

	// ExistingPaths lists previously generated code files; new codes of the
	// same total length keep the minimum distance from their entries.
	ExistingPaths []string

	// OutputDir receives one prefix_<PREFIX>.txt file per group.
	OutputDir string

	// Parallel generates groups concurrently, each with its own random
	// stream. The default is the sequential order the groups were given in.
	Parallel bool

	// MaxAttempts caps candidate draws per group; 0 retries forever.
	MaxAttempts int

	// Quiet suppresses the per-attempt progress marks.
	Quiet bool
	// ProgressWriter receives one mark per attempt ("." rejected,
	// "+" accepted); defaults to os.Stdout.
	ProgressWriter io.Writer

	// Logger records operational events; use zerolog.Nop() for silence.
	Logger zerolog.Logger
}

// ParseGroupSpec parses a "prefix:count" argument. A bare number is a group
// with the empty prefix, so "250" and ":250" mean the same thing.
func ParseGroupSpec(s string) (GroupSpec, error) {
	prefix, countStr, found := strings.Cut(s, ":")
	if !found {
		countStr = prefix
		prefix = ""
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return GroupSpec{}, fmt.Errorf("invalid group %q: count %q is not a number", s, countStr)
	}
	if count < 0 {
		return GroupSpec{}, fmt.Errorf("invalid group %q: count must not be negative", s)
	}
	return GroupSpec{Prefix: prefix, Count: count}, nil
}

func withDefaults(opts Options) Options {
	if len(opts.Groups) == 0 {
		opts.Groups = []GroupSpec{{Prefix: "", Count: defaultGroupCount}}
	}
	if opts.ProgressWriter == nil {
		opts.ProgressWriter = os.Stdout
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return opts
}

// validate rejects bad options before any generation or file output starts.
func validate(opts Options) error {
	if opts.Digits < 1 {
		return fmt.Errorf("digits must be at least 1, got %d", opts.Digits)
	}
	if opts.MinDistance < 0 {
		return fmt.Errorf("min distance must not be negative, got %d", opts.MinDistance)
	}
	if opts.MaxAttempts < 0 {
		return fmt.Errorf("max attempts must not be negative, got %d", opts.MaxAttempts)
	}

	seen := make(map[string]bool, len(opts.Groups))
	for _, group := range opts.Groups {
		if group.Count < 0 {
			return fmt.Errorf("count for prefix %q must not be negative, got %d", group.Prefix, group.Count)
		}
		if !alphanumeric(group.Prefix) {
			return fmt.Errorf("prefix %q must contain only letters and digits", group.Prefix)
		}
		if seen[group.Prefix] {
			return fmt.Errorf("duplicate prefix %q: each prefix owns one output file", group.Prefix)
		}
		seen[group.Prefix] = true
	}
	return nil
}

// alphanumeric keeps prefixes safe to embed in output file names.
func alphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
			continue
		}
		return false
	}
	return true
}
