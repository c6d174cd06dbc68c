package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

const digitAlphabet = "0123456789"

// ErrAttemptsExhausted is returned when a group hits its attempt budget
// before reaching the requested count.
var ErrAttemptsExhausted = errors.New("attempt budget exhausted before reaching requested count")

// Progress is called once per attempted candidate; accepted reports whether
// the candidate joined the group. A nil Progress is silent.
type Progress func(accepted bool)

// Generator produces groups of prefix+digit codes where every pair of codes
// within a group differs in at least the minimum Hamming distance.
type Generator struct {
	rng         *rand.Rand
	digits      int
	minDistance int

	// MaxAttempts caps the number of candidates tried per group. 0 means
	// unbounded: an infeasible request keeps retrying until the process is
	// interrupted, visible only through the progress signals slowing down.
	MaxAttempts int
}

// New creates a Generator.
// digits must be at least 1. minDistance of 0 disables the distance check,
// so every candidate is accepted (duplicates included).
func New(rng *rand.Rand, digits, minDistance int) (*Generator, error) {
	if rng == nil {
		return nil, errors.New("rng is required")
	}
	if digits < 1 {
		return nil, fmt.Errorf("digits must be at least 1, got %d", digits)
	}
	if minDistance < 0 {
		return nil, fmt.Errorf("min distance must not be negative, got %d", minDistance)
	}
	return &Generator{
		rng:         rng,
		digits:      digits,
		minDistance: minDistance,
	}, nil
}

// GenerateGroup returns count codes carrying prefix, in acceptance order.
// Every pair of returned codes, and every pair of (returned, avoid) codes,
// is at least the minimum distance apart. Entries in avoid must have the
// same total length as the group's codes.
//
// Candidates are drawn until the group is full, so a request near or beyond
// what the code space can hold runs until ctx is cancelled or, when
// MaxAttempts is set, until the budget runs out.
func (g *Generator) GenerateGroup(ctx context.Context, prefix string, count int, avoid []string, progress Progress) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", count)
	}

	accepted := make([]string, 0, count)
	attempts := 0
	for len(accepted) < count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if g.MaxAttempts > 0 && attempts >= g.MaxAttempts {
			return nil, fmt.Errorf("%w: %d attempts produced %d of %d codes for prefix %q",
				ErrAttemptsExhausted, attempts, len(accepted), count, prefix)
		}
		attempts++

		candidate := prefix + g.randomDigits()
		ok, err := g.admissible(candidate, avoid, accepted)
		if err != nil {
			return nil, err
		}
		if ok {
			accepted = append(accepted, candidate)
		}
		if progress != nil {
			progress(ok)
		}
	}
	return accepted, nil
}

func (g *Generator) admissible(candidate string, avoid, accepted []string) (bool, error) {
	ok, err := Admissible(candidate, avoid, g.minDistance)
	if err != nil || !ok {
		return false, err
	}
	return Admissible(candidate, accepted, g.minDistance)
}

// randomDigits draws g.digits decimal digits, each independently uniform.
func (g *Generator) randomDigits() string {
	b := make([]byte, g.digits)
	for i := range b {
		b[i] = digitAlphabet[g.rng.Intn(len(digitAlphabet))]
	}
	return string(b)
}
