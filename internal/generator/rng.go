package generator

import (
	"math/rand"
	"time"
)

// PickSeed returns seed unchanged when it is non-zero, otherwise a seed
// derived from the current time. Callers should log the returned value so
// any run can be reproduced with an explicit seed.
func PickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// NewRNG creates a random source for code generation. The generator does
// not need cryptographic randomness, only a good-quality seedable stream.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
