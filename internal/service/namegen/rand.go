package namegen

import "math/rand/v2"

// Rand is the source of uniform draws used while composing names.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand draws from the goroutine-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

func pick(rng Rand, items []string) string {
	return items[rng.IntN(len(items))]
}
