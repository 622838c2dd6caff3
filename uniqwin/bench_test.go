package uniqwin_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlseq/uniqwin"
)

// benchmarkScan is a helper that scans a pseudo-random sequence of n
// symbols drawn from an alphabet of k values. It resets the timer after
// input generation.
func benchmarkScan(b *testing.B, n, k int) {
	rng := rand.New(rand.NewSource(1))
	seq := make([]int, n)
	for i := range seq {
		seq[i] = rng.Intn(k) // predictable distribution per seed
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := uniqwin.Scan(seq); err != nil {
			b.Fatalf("Scan failed: %v", err) // report and stop on error
		}
	}
}

// BenchmarkScan_SmallAlphabet benchmarks frequent window resets (k=4).
func BenchmarkScan_SmallAlphabet(b *testing.B) {
	benchmarkScan(b, 10_000, 4)
}

// BenchmarkScan_MediumAlphabet benchmarks mixed behavior (k=64).
func BenchmarkScan_MediumAlphabet(b *testing.B) {
	benchmarkScan(b, 10_000, 64)
}

// BenchmarkScan_LargeAlphabet benchmarks long windows, rare resets (k=4096).
func BenchmarkScan_LargeAlphabet(b *testing.B) {
	benchmarkScan(b, 10_000, 4096)
}

// BenchmarkLongestString benchmarks the rune-aware string form.
func BenchmarkLongestString(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	letters := []rune("abcdefghijklmnopqrstuvwxyz")
	rs := make([]rune, 10_000)
	for i := range rs {
		rs[i] = letters[rng.Intn(len(letters))]
	}
	s := string(rs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = uniqwin.LongestString(s)
	}
}
