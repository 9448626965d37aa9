// Package rng builds the seeded random sources used by presets and commands.
package rng

import "math/rand"

// New returns a deterministic source for seed. A zero seed is replaced by 1
// so that "unset" and "explicit zero" runs stay reproducible.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
