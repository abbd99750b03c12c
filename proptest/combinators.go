package proptest

// OneOf returns a random element from the provided values.
// Panics if values is empty.
func OneOf[T any](g *Generator, values ...T) T {
	if len(values) == 0 {
		panic("proptest: OneOf called with no values")
	}
	return values[g.Intn(len(values))]
}

// Pick returns a random element from a non-empty slice.
// Panics if slice is empty.
func Pick[T any](g *Generator, slice []T) T {
	if len(slice) == 0 {
		panic("proptest: Pick called with empty slice")
	}
	return slice[g.Intn(len(slice))]
}

// Slice generates a slice of length [0, maxLen] using the generator function.
func Slice[T any](g *Generator, maxLen int, gen func(*Generator) T) []T {
	if maxLen <= 0 {
		return nil
	}
	return SliceExact(g, g.Intn(maxLen+1), gen)
}

// SliceExact generates a slice of exactly the given length.
func SliceExact[T any](g *Generator, length int, gen func(*Generator) T) []T {
	result := make([]T, length)
	for i := 0; i < length; i++ {
		result[i] = gen(g)
	}
	return result
}

// Filter generates values until the predicate passes or maxRetries is exceeded.
// Returns (value, true) if a matching value was found, (zero, false) otherwise.
func Filter[T any](g *Generator, maxRetries int, gen func(*Generator) T, pred func(T) bool) (T, bool) {
	for i := 0; i < maxRetries; i++ {
		val := gen(g)
		if pred(val) {
			return val, true
		}
	}
	var zero T
	return zero, false
}
