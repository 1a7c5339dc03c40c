// Package treewalk defines the tree node type, tunable options and
// error sentinels for tree traversal.
package treewalk

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrNilRoot is returned when a nil root node is passed.
	ErrNilRoot = errors.New("treewalk: root is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("treewalk: invalid option supplied")
)

// Node is one node of an n-ary tree. Children order is significant:
// traversals explore children strictly in slice order.
type Node[T any] struct {
	// Value is the payload carried by this node.
	Value T

	// Children holds the subtrees, leftmost first. Nil entries are skipped.
	Children []*Node[T]
}

// New builds a node from a value and optional children.
func New[T any](value T, children ...*Node[T]) *Node[T] {
	return &Node[T]{Value: value, Children: children}
}

// Option configures traversal behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the traversal is invoked.
type Option[T any] func(*Options[T])

// Options holds parameters and callbacks to customize a traversal.
type Options[T any] struct {
	// OnVisit is called for every visited value together with its depth
	// (root = 0). Returning an error aborts the walk with that error.
	OnVisit func(value T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op hook and no depth limit.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		OnVisit:  func(T, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithOnVisit registers a callback invoked on every visit; returning an
// error from the callback stops the traversal.
func WithOnVisit[T any](fn func(value T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the traversal below the given depth.
//
//	d > 0:  visit nodes at depth ≤ d only
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *Options[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}
