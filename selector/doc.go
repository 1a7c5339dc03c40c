// Package selector provides an immutable, chainable CSS selector builder
// enforcing the positional selector grammar at construction time, plus
// combination of finished selectors with CSS combinators.
//
// What
//
//   - Build simple selectors segment by segment:
//     type, #id, .class, [attribute], :pseudo-class, ::pseudo-element.
//   - Every append returns a NEW chain node; nothing is ever mutated, so
//     any intermediate chain may be shared and extended independently.
//   - Combine two finished selectors (chains or prior combinations) with a
//     combinator (" ", ">", "+", "~") into a larger selector tree.
//   - Render() walks the structure and produces the canonical CSS text.
//
// Grammar
//
//	element#id.class[attr]:pseudoClass::pseudoElement
//
//	Segments must be appended in this fixed category order (appending a
//	lower-ranked category after a higher-ranked one fails), and the type,
//	id and pseudo-element categories may each appear at most once per
//	chain. Class, attribute and pseudo-class segments accumulate freely
//	(".a.b.c"). Violations are reported at the offending append, never
//	deferred to Render.
//
// Determinism & Safety
//
//	Chains are persistent singly-linked lists built strictly backward in
//	time; a failed append leaves the receiver untouched and usable.
//	Because no node is mutated after construction, concurrent goroutines
//	may extend the same chain without coordination.
//
// Complexity (n = segments in the chain)
//
//   - Append: O(n) worst case (duplicate scan for singleton kinds), O(1)
//     for the order check.
//   - Render: O(total text length).
//
// Usage
//
//	s, err := selector.Element("a").Attr(`href$=".png"`)
//	if err != nil { ... }
//	s, err = s.PseudoClass("focus")
//	fmt.Println(s.Render()) // a[href$=".png"]:focus
//
//	sel := selector.Combine(left, selector.NextSibling, right)
//	fmt.Println(sel.Render())
//
// Errors
//
//   - ErrDuplicateSingleton — second type, id, or pseudo-element segment
//     in one chain.
//   - ErrOutOfOrder — segment appended after a higher-ranked category.
//
// Both are sentinels; branch with errors.Is.
package selector
