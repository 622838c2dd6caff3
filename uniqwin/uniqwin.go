package uniqwin

// Scan — longest unique window
//
// Description:
//
//	Scan finds the longest contiguous window of seq containing no
//	repeated element. It is the classic "longest substring without
//	repeating characters" generalized to any comparable element type.
//
// Algorithm Outline (sliding window, last-seen index):
//  1. Maintain start = 0 (left edge, inclusive), bestStart = 0, bestLen = 0.
//  2. Maintain lastSeen: symbol → most recent position, initially empty.
//  3. For each position i with symbol c = seq[i]:
//     a. If lastSeen[c] exists and lastSeen[c] >= start, the duplicate
//     lies inside the window: advance start = lastSeen[c] + 1.
//     An entry with lastSeen[c] < start is stale — it refers to an
//     occurrence a prior advance already excluded and must be
//     ignored. The index is never purged, so every read is
//     validated against the current start.
//     b. Overwrite lastSeen[c] = i unconditionally.
//     c. If i - start + 1 strictly exceeds bestLen, record the new
//     best. Strict comparison keeps the leftmost window on ties.
//  4. The winning run is seq[bestStart : bestStart+bestLen] — empty when
//     n = 0, since the loop body never executes.
//
// Complexity:
//
//	Time   = O(n) — each position visited once, amortized O(1) map ops
//	Memory = O(k) — one index entry per distinct symbol
//
// Errors:
//   - ErrOptionViolation — if an invalid Option was supplied.
//
// The scan itself is total: any finite sequence of comparable elements
// yields a well-defined Result with no error.
func Scan[T comparable](seq []T, opts ...Option) (Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	hint := o.CapacityHint
	if hint == 0 {
		hint = len(seq)
	}

	return scan(seq, hint, o.OnAdvance, o.OnBest), nil
}

// Longest returns the longest duplicate-free contiguous run of seq as a
// subslice sharing seq's backing array. Ties keep the leftmost run;
// empty or nil input yields an empty slice.
func Longest[T comparable](seq []T) []T {
	r := scan(seq, len(seq), nopHook, nopHook)

	return seq[r.Start:r.End()]
}

// LongestString returns the longest substring of s without repeating
// characters. The scan is rune-aware: a multi-byte symbol counts as one
// element, never as its individual bytes.
func LongestString(s string) string {
	rs := []rune(s)
	r := scan(rs, len(rs), nopHook, nopHook)

	return string(rs[r.Start:r.End()])
}

// scan is the single-pass core shared by Scan, Longest and LongestString.
func scan[T comparable](seq []T, hint int, onAdvance, onBest func(int, int)) Result {
	var start, bestStart, bestLen int
	lastSeen := make(map[T]int, hint)

	for i, c := range seq {
		// stale entries (pos < start) are ignored, not evicted
		if pos, ok := lastSeen[c]; ok && pos >= start {
			start = pos + 1
			onAdvance(i, start)
		}
		lastSeen[c] = i
		if length := i - start + 1; length > bestLen {
			bestLen = length
			bestStart = start
			onBest(bestStart, bestLen)
		}
	}

	return Result{Start: bestStart, Len: bestLen}
}

// nopHook is the default no-op observer.
func nopHook(int, int) {}
