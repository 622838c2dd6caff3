package reverse

// String returns s with its characters in reverse order. The reversal
// is rune-aware: multi-byte characters are kept intact, so for any
// valid UTF-8 input String(String(s)) == s.
func String(s string) string {
	return string(Runes([]rune(s)))
}

// Runes returns a new slice holding rs in reverse order; rs itself is
// left untouched.
func Runes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}

	return out
}

// Slice returns a new slice holding s's elements in reverse order.
func Slice[T any](s []T) []T {
	out := make([]T, len(s))
	for i, j := 0, len(s)-1; j >= 0; i, j = i+1, j-1 {
		out[i] = s[j]
	}

	return out
}
