// Package seq provides infinite lazy numeric sequences and a lazy merge
// of ordered sequences, built on the standard library iter package.
//
// What
//
//   - Fibonacci(): the infinite sequence 0, 1, 1, 2, 3, 5, 8, …
//   - Naturals(start): the infinite counting sequence start, start+1, …
//   - Merge(a, b): the classic two-pointer merge of two non-decreasing
//     (possibly infinite) sequences into one non-decreasing sequence.
//   - Take(s, n): collect the first n values of any sequence.
//
// Laziness
//
//	Every sequence is an iter.Seq: nothing is computed until ranged
//	over, and breaking out of the range stops production immediately.
//	Merging two infinite sequences is therefore perfectly fine — consume
//	as much of the result as you need.
//
//	for v := range seq.Merge(seq.Naturals(0), seq.Fibonacci()) {
//	    if v > 100 {
//	        break
//	    }
//	    ...
//	}
//
// Stability
//
//	Merge is stable: when both inputs offer equal values, the value from
//	the first sequence is yielded first.
//
// Overflow
//
//	Fibonacci yields uint64 values; terms beyond F(93) wrap around and
//	are unspecified. Stop consuming before then.
package seq
