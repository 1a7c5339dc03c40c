package selector

import (
	"fmt"
	"strings"
)

// Combined joins two finished selectors with a combinator. Like Chain it
// is immutable; both sides may themselves be Combined values, forming an
// arbitrarily nested selector tree.
type Combined struct {
	left       Selector
	combinator Combinator
	right      Selector
}

var (
	_ Selector     = (*Combined)(nil)
	_ fmt.Stringer = (*Combined)(nil)
)

// Combine builds a Combined selector from two already-built selectors
// and a combinator. The combinator value is caller-trusted: no
// membership check is performed beyond using it verbatim in Render.
func Combine(left Selector, combinator Combinator, right Selector) *Combined {
	return &Combined{left: left, combinator: combinator, right: right}
}

// Render returns "<left> <combinator> <right>". The combinator is
// always padded with single spaces, even when it is the descendant
// combinator (itself a space) — nested descendant combinations
// therefore render with three consecutive spaces. That quirk is part of
// the reference output format and is preserved verbatim.
func (c *Combined) Render() string {
	var sb strings.Builder
	sb.WriteString(c.left.Render())
	sb.WriteString(" ")
	sb.WriteString(string(c.combinator))
	sb.WriteString(" ")
	sb.WriteString(c.right.Render())

	return sb.String()
}

// String implements fmt.Stringer; identical to Render.
func (c *Combined) String() string { return c.Render() }
