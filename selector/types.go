// Package selector defines segment kinds, combinators, and error
// sentinels for the CSS selector builder.
package selector

import "errors"

// Sentinel errors for chain construction.
var (
	// ErrDuplicateSingleton is returned when a second type, id, or
	// pseudo-element segment is appended to a chain that already has one.
	ErrDuplicateSingleton = errors.New("selector: duplicate singleton segment")

	// ErrOutOfOrder is returned when a segment is appended after a
	// higher-ranked category is already present in the chain.
	ErrOutOfOrder = errors.New("selector: segment out of grammar order")
)

// Kind identifies the grammatical category of a selector segment.
// The declaration order is the grammar rank: a chain's kinds must
// appear in non-decreasing Kind order.
type Kind int

const (
	// KindType is a type (element) selector segment, e.g. "div".
	KindType Kind = iota
	// KindID is an id segment, rendered with a "#" prefix.
	KindID
	// KindClass is a class segment, rendered with a "." prefix.
	KindClass
	// KindAttribute is an attribute segment, rendered wrapped in "[ ]".
	KindAttribute
	// KindPseudoClass is a pseudo-class segment, rendered with a ":" prefix.
	KindPseudoClass
	// KindPseudoElement is a pseudo-element segment, rendered with a "::" prefix.
	KindPseudoElement
)

// kindNames maps each Kind to its diagnostic name.
var kindNames = [...]string{
	KindType:          "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

// kindPrefixes maps each Kind to its render prefix. KindAttribute also
// wraps its text in brackets; see segment rendering in selector.go.
var kindPrefixes = [...]string{
	KindType:          "",
	KindID:            "#",
	KindClass:         ".",
	KindAttribute:     "[",
	KindPseudoClass:   ":",
	KindPseudoElement: "::",
}

// String returns the human-readable kind name, e.g. "pseudo-class".
func (k Kind) String() string {
	if k < KindType || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// singleton reports whether the kind may occur at most once per chain.
func (k Kind) singleton() bool {
	return k == KindType || k == KindID || k == KindPseudoElement
}

// Combinator joins two selectors in a Combined selector. Any value is
// accepted by Combine; these constants cover the four CSS combinators.
type Combinator string

const (
	// Descendant is the descendant combinator (a single space).
	Descendant Combinator = " "
	// Child is the child combinator ">".
	Child Combinator = ">"
	// NextSibling is the adjacent-sibling combinator "+".
	NextSibling Combinator = "+"
	// Sibling is the general-sibling combinator "~".
	Sibling Combinator = "~"
)

// Selector is anything that renders to canonical CSS selector text:
// a segment chain or a combination of selectors.
type Selector interface {
	// Render returns the canonical CSS text of the selector.
	// It is pure: repeated calls yield identical output.
	Render() string
}
