// Package selector implements the immutable segment chain and the
// facade constructors for the CSS selector builder.
package selector

import (
	"fmt"
	"strings"
)

// Chain is one node of an immutable, persistent selector chain: the
// segment appended last plus a link to everything appended before it.
// The zero Chain is not useful; obtain one via the facade constructors
// (Element, ID, Class, Attr, PseudoClass, PseudoElement).
//
// A Chain is never mutated after construction. Appending produces a new
// node whose prev is the receiver, so several callers may extend the
// same intermediate chain concurrently without locks.
type Chain struct {
	kind Kind
	text string
	prev *Chain // nil for the first segment
}

// compile-time interface checks
var (
	_ Selector     = (*Chain)(nil)
	_ fmt.Stringer = (*Chain)(nil)
)

// Element starts a new chain with a type (element) segment.
func Element(text string) *Chain {
	return &Chain{kind: KindType, text: text}
}

// ID starts a new chain with an id segment.
func ID(text string) *Chain {
	return &Chain{kind: KindID, text: text}
}

// Class starts a new chain with a class segment.
func Class(text string) *Chain {
	return &Chain{kind: KindClass, text: text}
}

// Attr starts a new chain with an attribute segment.
func Attr(text string) *Chain {
	return &Chain{kind: KindAttribute, text: text}
}

// PseudoClass starts a new chain with a pseudo-class segment.
func PseudoClass(text string) *Chain {
	return &Chain{kind: KindPseudoClass, text: text}
}

// PseudoElement starts a new chain with a pseudo-element segment.
func PseudoElement(text string) *Chain {
	return &Chain{kind: KindPseudoElement, text: text}
}

// append validates kind against the receiver chain and, on success,
// returns a new tip node linked to the receiver.
//
// Validation order matters: the duplicate-singleton check runs first,
// so appending a second element after a class reports the duplicate,
// not the ordering violation.
func (c *Chain) append(kind Kind, text string) (*Chain, error) {
	if kind.singleton() {
		for n := c; n != nil; n = n.prev {
			if n.kind == kind {
				return nil, fmt.Errorf("%w: second %s segment %q", ErrDuplicateSingleton, kind, text)
			}
		}
	}
	if kind < c.kind {
		return nil, fmt.Errorf("%w: %s segment %q after %s", ErrOutOfOrder, kind, text, c.kind)
	}

	return &Chain{kind: kind, text: text, prev: c}, nil
}

// Element appends a type (element) segment.
// Fails with ErrDuplicateSingleton if the chain already has one, or
// ErrOutOfOrder if any segment is already present (type ranks first).
func (c *Chain) Element(text string) (*Chain, error) {
	return c.append(KindType, text)
}

// ID appends an id segment. At most one id per chain.
func (c *Chain) ID(text string) (*Chain, error) {
	return c.append(KindID, text)
}

// Class appends a class segment. Classes accumulate (".a.b.c").
func (c *Chain) Class(text string) (*Chain, error) {
	return c.append(KindClass, text)
}

// Attr appends an attribute segment; text is rendered inside "[ ]".
func (c *Chain) Attr(text string) (*Chain, error) {
	return c.append(KindAttribute, text)
}

// PseudoClass appends a pseudo-class segment. Pseudo-classes accumulate.
func (c *Chain) PseudoClass(text string) (*Chain, error) {
	return c.append(KindPseudoClass, text)
}

// PseudoElement appends a pseudo-element segment. At most one per chain.
func (c *Chain) PseudoElement(text string) (*Chain, error) {
	return c.append(KindPseudoElement, text)
}

// Render returns the canonical CSS text: every segment's rendering,
// oldest first, concatenated with no separators.
func (c *Chain) Render() string {
	var sb strings.Builder
	c.render(&sb)

	return sb.String()
}

// render writes ancestors first, then the receiver's own segment.
func (c *Chain) render(sb *strings.Builder) {
	if c.prev != nil {
		c.prev.render(sb)
	}
	sb.WriteString(kindPrefixes[c.kind])
	sb.WriteString(c.text)
	if c.kind == KindAttribute {
		sb.WriteString("]")
	}
}

// String implements fmt.Stringer; identical to Render.
func (c *Chain) String() string { return c.Render() }

// Kind returns the category of the most recently appended segment.
func (c *Chain) Kind() Kind { return c.kind }

// Len reports how many segments the chain holds.
func (c *Chain) Len() int {
	n := 0
	for node := c; node != nil; node = node.prev {
		n++
	}

	return n
}
