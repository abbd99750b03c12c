package proptest

import (
	"strings"
	"testing"
)

func TestGenerator_SameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}

func TestGenerator_SeedIsReported(t *testing.T) {
	if got := New(42).Seed(); got != 42 {
		t.Errorf("Seed() = %d, want 42", got)
	}
	if New(0).Seed() == 0 {
		t.Error("zero seed should be replaced with a real one")
	}
}

func TestIntRange_StaysInBounds(t *testing.T) {
	g := New(1)
	for i := 0; i < 1000; i++ {
		n := g.IntRange(-5, 5)
		if n < -5 || n > 5 {
			t.Fatalf("IntRange(-5, 5) = %d", n)
		}
	}
}

func TestStringOf_AlphabetAndLength(t *testing.T) {
	g := New(1)
	for i := 0; i < 500; i++ {
		s := g.StringOf("ab", 2, 4)
		if len(s) < 2 || len(s) > 4 {
			t.Fatalf("StringOf length = %d", len(s))
		}
		if strings.Trim(s, "ab") != "" {
			t.Fatalf("StringOf produced %q outside the alphabet", s)
		}
	}
}

func TestIdentifierLower_NeverEmpty(t *testing.T) {
	g := New(1)
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789_"
	for i := 0; i < 500; i++ {
		id := g.IdentifierLower(8)
		if id == "" {
			t.Fatal("IdentifierLower returned an empty string")
		}
		if strings.Trim(id, alphabet) != "" {
			t.Fatalf("IdentifierLower produced %q outside the alphabet", id)
		}
	}
}

func TestOneOf_ReturnsProvidedValue(t *testing.T) {
	g := New(1)
	for i := 0; i < 100; i++ {
		v := OneOf(g, "a", "b", "c")
		if v != "a" && v != "b" && v != "c" {
			t.Fatalf("OneOf returned %q", v)
		}
	}
}

func TestSlice_RespectsMaxLen(t *testing.T) {
	g := New(1)
	for i := 0; i < 100; i++ {
		s := Slice(g, 5, func(g *Generator) int { return g.Intn(10) })
		if len(s) > 5 {
			t.Fatalf("Slice length = %d, want <= 5", len(s))
		}
	}
	if s := Slice(g, 0, func(g *Generator) int { return 0 }); s != nil {
		t.Errorf("Slice with maxLen 0 = %v, want nil", s)
	}
}

func TestFilter_FindsMatchingValue(t *testing.T) {
	g := New(1)

	v, ok := Filter(g, 100, func(g *Generator) int { return g.Intn(10) }, func(n int) bool { return n > 5 })
	if !ok {
		t.Fatal("Filter should find a value above 5 within 100 tries")
	}
	if v <= 5 {
		t.Errorf("Filter returned %d, want > 5", v)
	}

	_, ok = Filter(g, 10, func(g *Generator) int { return 1 }, func(n int) bool { return n == 2 })
	if ok {
		t.Error("Filter should give up when the predicate never passes")
	}
}
