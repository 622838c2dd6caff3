// Package reverse provides small, total reversal utilities for strings,
// rune slices and generic slices.
//
// ✨ Key features:
//   - rune-aware String: multi-byte characters survive a round trip
//   - involution: reverse.String(reverse.String(s)) == s
//   - generic Slice for any element type
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/reverse"
//
//	reverse.String("a1b2c3") // "3c2b1a"
//	reverse.Slice([]int{1, 2, 3})
//
// Performance: O(n) time, one output allocation; inputs are never
// mutated.
package reverse
