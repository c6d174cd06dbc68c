package generator

import (
	"fmt"
)

// Distance returns the Hamming distance between two codes: the number of
// positions at which they differ. The codes must have equal length;
// comparing codes of different lengths is a bug and returns an error
// instead of silently truncating.
func Distance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("codes must have equal length, got %d and %d", len(a), len(b))
	}
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}

// Admissible reports whether candidate keeps at least minDistance against
// every code in accepted. It short-circuits on the first violation; the
// order of accepted never changes the answer, only how fast it is found.
func Admissible(candidate string, accepted []string, minDistance int) (bool, error) {
	for _, code := range accepted {
		d, err := Distance(candidate, code)
		if err != nil {
			return false, err
		}
		if d < minDistance {
			return false, nil
		}
	}
	return true, nil
}
