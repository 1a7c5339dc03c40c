// Package treewalk implements depth-first and breadth-first traversal
// over Node trees, with visit hooks and depth limiting.
package treewalk

import "fmt"

// item pairs a node with its depth during traversal.
type item[T any] struct {
	node  *Node[T]
	depth int
}

// walker encapsulates mutable traversal state shared by both orders.
type walker[T any] struct {
	opts Options[T]
	out  []T
}

// DepthFirst traverses the tree rooted at root in pre-order: each node
// is visited before its children, and each child subtree is fully
// explored before the next sibling. The traversal is iterative, so
// very deep (degenerate chain) trees are safe.
// Returns ErrNilRoot for a nil root, ErrOptionViolation for bad
// options, or any error returned by the OnVisit hook.
func DepthFirst[T any](root *Node[T], opts ...Option[T]) ([]T, error) {
	w, err := newWalker(root, opts)
	if err != nil {
		return nil, err
	}

	stack := []item[T]{{node: root, depth: 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err = w.visit(it); err != nil {
			return nil, err
		}
		if w.pruned(it.depth) {
			continue
		}
		// push children in reverse so the leftmost is explored first
		for i := len(it.node.Children) - 1; i >= 0; i-- {
			if child := it.node.Children[i]; child != nil {
				stack = append(stack, item[T]{node: child, depth: it.depth + 1})
			}
		}
	}

	return w.out, nil
}

// BreadthFirst traverses the tree rooted at root in level order: the
// root first, then every depth-1 node left to right, then depth 2, and
// so on. Error contract matches DepthFirst.
func BreadthFirst[T any](root *Node[T], opts ...Option[T]) ([]T, error) {
	w, err := newWalker(root, opts)
	if err != nil {
		return nil, err
	}

	queue := []item[T]{{node: root, depth: 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if err = w.visit(it); err != nil {
			return nil, err
		}
		if w.pruned(it.depth) {
			continue
		}
		for _, child := range it.node.Children {
			if child != nil {
				queue = append(queue, item[T]{node: child, depth: it.depth + 1})
			}
		}
	}

	return w.out, nil
}

// newWalker validates inputs, resolves options and prepares state.
func newWalker[T any](root *Node[T], opts []Option[T]) (*walker[T], error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[T]{opts: o}, nil
}

// visit records the value and runs the OnVisit hook.
func (w *walker[T]) visit(it item[T]) error {
	w.out = append(w.out, it.node.Value)
	if err := w.opts.OnVisit(it.node.Value, it.depth); err != nil {
		return fmt.Errorf("treewalk: OnVisit error at depth %d: %w", it.depth, err)
	}

	return nil
}

// pruned reports whether children at depth+1 lie beyond MaxDepth.
func (w *walker[T]) pruned(depth int) bool {
	return w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth
}
