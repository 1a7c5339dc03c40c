package beersong_test

import (
	"fmt"

	"github.com/ilyakrasnou/go-assignments/beersong"
)

// ExampleVerse prints the verse where the count drops to a single
// bottle.
func ExampleVerse() {
	v, err := beersong.Verse(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v[0])
	fmt.Println(v[1])
	// Output:
	// 2 bottles of beer on the wall, 2 bottles of beer.
	// Take one down and pass it around, 1 bottle of beer on the wall.
}
