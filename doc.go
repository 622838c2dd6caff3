// Package lvlseq is your in-memory toolbox for scanning and reshaping
// plain sequences — strings, slices, event streams — one pass at a time.
//
// 🚀 What is lvlseq?
//
//	A small, zero-dependency library of single-pass sequence algorithms:
//		• uniqwin: longest contiguous run with no repeated element,
//		  a sliding window over a last-seen position index
//		• reverse: rune-aware and generic reversal utilities
//
// ✨ Why choose lvlseq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – leftmost tie-break, total functions, no surprises
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – observation hooks (OnAdvance, OnBest…) for custom logic
//
// Everything is organized under per-algorithm subpackages:
//
//	uniqwin/ — longest unique window over any comparable element type
//	reverse/ — string, rune and generic slice reversal
//
// Quick example:
//
//	uniqwin.LongestString("abcabcbb") // "abc"
//	reverse.String("a1b2c3")          // "3c2b1a"
//
// Dive into the per-package docs and example_test.go files for full
// walkthroughs.
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
