// Package treewalk traverses in-memory n-ary trees two ways:
// depth-first (pre-order) and breadth-first (level order).
//
// What
//
//   - Node[T] is a plain value-plus-children tree node; build trees by
//     hand or from any structure you already have.
//   - DepthFirst returns values parent-before-children, exploring each
//     child subtree fully before its next sibling.
//   - BreadthFirst returns values level by level, left to right.
//   - Both accept functional options: an OnVisit hook (error aborts the
//     walk) and a MaxDepth limit.
//
// Determinism
//
//	Children are explored strictly in slice order, so output is fully
//	reproducible for a given tree.
//
// Depth safety
//
//	DepthFirst is iterative (explicit stack), so degenerate chains of
//	hundreds of thousands of nodes traverse fine without deep recursion.
//
// Complexity (n = nodes)
//
//   - Time:   O(n)
//   - Memory: O(width) for BreadthFirst, O(depth·branching) worst case
//     for the DepthFirst stack.
//
// Errors
//
//   - ErrNilRoot          if root is nil.
//   - ErrOptionViolation  if an option value is invalid (negative depth).
//   - Wrapped OnVisit errors abort the traversal.
package treewalk
