package selector_test

import (
	"fmt"
	"testing"

	"github.com/ilyakrasnou/go-assignments/selector"
)

// BenchmarkChain_Append measures appending N class segments to one chain.
func BenchmarkChain_Append(b *testing.B) {
	const N = 64
	names := make([]string, N)
	for i := range names {
		names[i] = fmt.Sprintf("c%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := selector.Class(names[0])
		for _, name := range names[1:] {
			c, _ = c.Class(name)
		}
	}
}

// BenchmarkChain_Render measures rendering a 64-segment chain.
func BenchmarkChain_Render(b *testing.B) {
	c := selector.Class("c0")
	for i := 1; i < 64; i++ {
		c, _ = c.Class(fmt.Sprintf("c%d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = c.Render()
	}
}

// BenchmarkCombine_Render measures rendering a nested combination tree.
func BenchmarkCombine_Render(b *testing.B) {
	var s selector.Selector = selector.Element("td")
	for i := 0; i < 16; i++ {
		s = selector.Combine(selector.Element("tr"), selector.Child, s)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Render()
	}
}
