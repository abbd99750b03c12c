// Package proptest provides property-based testing utilities with seeded
// random generation for reproducible tests.
//
// Property-based testing generates random inputs and verifies that certain
// invariants (properties) always hold. When a test fails, the seed is logged
// so the failure can be reproduced.
//
// Basic usage:
//
//	func TestMyProperty(t *testing.T) {
//	    proptest.QuickCheck(t, "my property", 200, func(g *proptest.Generator) bool {
//	        n := g.IntRange(1, 100)
//	        return n >= 1 && n <= 100
//	    })
//	}
package proptest

import (
	"math/rand"
	"testing"
	"time"
)

// Generator wraps a seeded random number generator for reproducible
// random value generation. The seed is stored so it can be logged
// on test failure for reproducibility.
type Generator struct {
	rng  *rand.Rand
	seed int64
}

// New creates a new Generator with the given seed.
// If seed is 0, uses the current time as the seed.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed used by this generator.
// This is useful for logging on test failure so the failure can be reproduced.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Intn returns a random int in [0, n).
// Panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.rng.Intn(n)
}

// IntRange returns a random int in [min, max] inclusive.
// Panics if min > max.
func (g *Generator) IntRange(min, max int) int {
	if min > max {
		panic("proptest: IntRange min > max")
	}
	return min + g.rng.Intn(max-min+1)
}

// Int63n returns a random int64 in [0, n).
// Panics if n <= 0.
func (g *Generator) Int63n(n int64) int64 {
	return g.rng.Int63n(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (g *Generator) Float64() float64 {
	return g.rng.Float64()
}

// Bool returns a random boolean with 50% probability for each value.
func (g *Generator) Bool() bool {
	return g.rng.Intn(2) == 1
}

// BoolWithProb returns true with the given probability (0.0 to 1.0).
func (g *Generator) BoolWithProb(prob float64) bool {
	return g.rng.Float64() < prob
}

// StringOf returns a random string drawn from the given alphabet with a
// length in [minLen, maxLen] inclusive.
// Panics if the alphabet is empty or minLen > maxLen.
func (g *Generator) StringOf(alphabet string, minLen, maxLen int) string {
	if alphabet == "" {
		panic("proptest: StringOf called with empty alphabet")
	}
	n := g.IntRange(minLen, maxLen)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	return string(buf)
}

// String returns a random printable ASCII string of length [0, maxLen].
func (g *Generator) String(maxLen int) string {
	const printable = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"
	return g.StringOf(printable, 0, maxLen)
}

// IdentifierLower returns a random non-empty lowercase identifier
// (letters, digits, underscore) of length [1, maxLen].
func (g *Generator) IdentifierLower(maxLen int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789_"
	return g.StringOf(alphabet, 1, maxLen)
}

// QuickCheck runs prop with iterations freshly generated inputs and fails the
// test if any iteration returns false, logging the seed so the failure can be
// reproduced with New(seed).
func QuickCheck(t *testing.T, name string, iterations int, prop func(*Generator) bool) {
	t.Helper()
	g := New(0)
	for i := 0; i < iterations; i++ {
		if !prop(g) {
			t.Fatalf("property %q failed at iteration %d (seed %d)", name, i, g.Seed())
		}
	}
}
