// Package seq implements infinite lazy sequences and their merge.
package seq

import (
	"cmp"
	"iter"
)

// Fibonacci returns the infinite Fibonacci sequence 0, 1, 1, 2, 3, 5, …
// as a lazy iterator. Terms beyond F(93) overflow uint64.
func Fibonacci() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		a, b := uint64(0), uint64(1)
		for yield(a) {
			a, b = b, a+b
		}
	}
}

// Naturals returns the infinite counting sequence start, start+1, start+2, …
func Naturals(start uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for v := start; yield(v); v++ {
		}
	}
}

// Merge lazily merges two non-decreasing sequences into one
// non-decreasing sequence. Either input may be infinite; when one side
// is exhausted the other is drained (or yielded forever). The merge is
// stable: on equal values the element from a is yielded first.
func Merge[V cmp.Ordered](a, b iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		av, aok := nextA()
		bv, bok := nextB()
		for aok && bok {
			if cmp.Less(bv, av) {
				if !yield(bv) {
					return
				}
				bv, bok = nextB()
			} else {
				if !yield(av) {
					return
				}
				av, aok = nextA()
			}
		}
		for aok {
			if !yield(av) {
				return
			}
			av, aok = nextA()
		}
		for bok {
			if !yield(bv) {
				return
			}
			bv, bok = nextB()
		}
	}
}

// Take collects the first n values of s into a slice. It stops pulling
// from s as soon as n values are gathered, so s may be infinite.
// A non-positive n yields an empty slice.
func Take[V any](s iter.Seq[V], n int) []V {
	if n <= 0 {
		return nil
	}
	out := make([]V, 0, n)
	for v := range s {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}

	return out
}
