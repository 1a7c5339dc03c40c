// Package assignments is a collection of small, self-contained Go
// exercises — each package is an independent kata you can read, run,
// and test in isolation.
//
// 🚀 What is go-assignments?
//
//	A pure-Go port of a set of classic teaching tasks:
//		• selector/ — an immutable, chainable CSS selector builder with
//		  grammar-order validation and selector combination
//		• treewalk/ — depth-first and breadth-first traversal of n-ary trees
//		• seq/      — infinite lazy sequences (Fibonacci, naturals) and a
//		  two-pointer merge of ordered lazy sequences
//		• beersong/ — the "99 Bottles of Beer" counting song, verse by verse
//		• objects/  — object ⇄ JSON round-tripping helpers
//
// ✨ Why this layout?
//
//   - Each exercise lives in its own package with its own tests, examples
//     and benchmarks — nothing composes with anything else
//   - Pure Go — no cgo, no hidden deps, no I/O, no goroutines
//   - Everything is a value: builders return new immutable nodes,
//     sequences are lazy stdlib iterators
//
// Quick taste:
//
//	s, _ := selector.ID("main").Class("container")
//	fmt.Println(s.Render()) // "#main.container"
//
// Dive into each package's doc.go for the full contract.
package assignments
