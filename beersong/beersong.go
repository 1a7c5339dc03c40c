// Package beersong generates the lines of the "99 Bottles of Beer"
// counting song, verse by verse or as one lazy stream.
//
// The song counts down from 99 bottles, two lines per verse; the count
// of 1 uses the singular "bottle", and the closing verse sends the
// singer back to the store. The full song is 200 lines.
package beersong

import (
	"errors"
	"fmt"
	"iter"
)

// MaxBottles is the count the song starts from and restocks to.
const MaxBottles = 99

// ErrVerseOutOfRange is returned by Verse for counts outside [0, 99].
var ErrVerseOutOfRange = errors.New("beersong: verse out of range")

// bottles spells out a bottle count, e.g. "99 bottles", "1 bottle",
// "no more bottles".
func bottles(n int) string {
	switch {
	case n == 0:
		return "no more bottles"
	case n == 1:
		return "1 bottle"
	default:
		return fmt.Sprintf("%d bottles", n)
	}
}

// Verse returns the two lines of the verse sung at count n.
// n = 99…1 are the counting verses; n = 0 is the closing verse.
func Verse(n int) ([2]string, error) {
	switch {
	case n < 0 || n > MaxBottles:
		return [2]string{}, fmt.Errorf("%w: %d", ErrVerseOutOfRange, n)
	case n == 0:
		return [2]string{
			"No more bottles of beer on the wall, no more bottles of beer.",
			fmt.Sprintf("Go to the store and buy some more, %d bottles of beer on the wall.", MaxBottles),
		}, nil
	default:
		return [2]string{
			fmt.Sprintf("%s of beer on the wall, %s of beer.", bottles(n), bottles(n)),
			fmt.Sprintf("Take one down and pass it around, %s of beer on the wall.", bottles(n-1)),
		}, nil
	}
}

// Lines lazily yields every line of the full song, first verse first.
func Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := MaxBottles; n >= 0; n-- {
			v, _ := Verse(n) // n is always in range here
			if !yield(v[0]) || !yield(v[1]) {
				return
			}
		}
	}
}

// Song returns the full song as a slice of lines.
func Song() []string {
	out := make([]string, 0, 2*(MaxBottles+1))
	for line := range Lines() {
		out = append(out, line)
	}

	return out
}
