// Package uniqwin finds the longest contiguous run of a sequence in
// which no element repeats, using a sliding window over a last-seen
// position index.
//
// 🚀 What is uniqwin?
//
//	Given any ordered sequence, uniqwin returns its longest duplicate-free
//	window in a single left-to-right pass.  Classic applications:
//	  • Longest substring without repeating characters
//	  • Deduplication windows over event / session streams
//	  • Sizing unique-token lookback buffers
//	  • Sliding-window warm-ups for rate or cache analysis
//
// ✨ Key features:
//   - single pass: O(n) time, O(k) memory (k = distinct symbols seen)
//   - generic: works on any []T with comparable elements, plus a
//     rune-aware string form
//   - leftmost tie-break: the first maximal window wins, deterministically
//   - stale-tolerant index: duplicate positions are validated against the
//     window start on read instead of being evicted
//   - optional hooks (OnAdvance, OnBest) to observe the scan
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/uniqwin"
//
//	// plain forms
//	s := uniqwin.LongestString("abcabcbb") // "abc"
//	r := uniqwin.Longest([]int{1, 2, 1, 3, 2, 4})
//
//	// instrumented form
//	res, err := uniqwin.Scan([]rune("pwwkew"),
//	  uniqwin.WithOnBest(func(start, length int) { /* ... */ }),
//	)
//
// Performance:
//
//   - Time:   O(n) — each position is visited exactly once
//   - Memory: O(k) — one map entry per distinct symbol encountered
//
// See examples in example_test.go for detailed walkthroughs.
package uniqwin
