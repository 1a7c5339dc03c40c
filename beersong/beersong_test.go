package beersong_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyakrasnou/go-assignments/beersong"
)

func TestVerse(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want [2]string
	}{
		{"opening", 99, [2]string{
			"99 bottles of beer on the wall, 99 bottles of beer.",
			"Take one down and pass it around, 98 bottles of beer on the wall.",
		}},
		{"plural to singular", 2, [2]string{
			"2 bottles of beer on the wall, 2 bottles of beer.",
			"Take one down and pass it around, 1 bottle of beer on the wall.",
		}},
		{"last bottle", 1, [2]string{
			"1 bottle of beer on the wall, 1 bottle of beer.",
			"Take one down and pass it around, no more bottles of beer on the wall.",
		}},
		{"closing", 0, [2]string{
			"No more bottles of beer on the wall, no more bottles of beer.",
			"Go to the store and buy some more, 99 bottles of beer on the wall.",
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := beersong.Verse(tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVerse_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 100, 1000} {
		_, err := beersong.Verse(n)
		assert.ErrorIs(t, err, beersong.ErrVerseOutOfRange, "n=%d", n)
	}
}

func TestSong_Shape(t *testing.T) {
	song := beersong.Song()
	require.Len(t, song, 200)

	assert.Equal(t, "99 bottles of beer on the wall, 99 bottles of beer.", song[0])
	assert.Equal(t, "Go to the store and buy some more, 99 bottles of beer on the wall.", song[199])

	// every odd line is a consequence line
	for i := 1; i < len(song); i += 2 {
		ok := strings.HasPrefix(song[i], "Take one down and pass it around, ") ||
			strings.HasPrefix(song[i], "Go to the store and buy some more, ")
		assert.True(t, ok, "line %d: %q", i, song[i])
	}
}

func TestLines_EarlyBreak(t *testing.T) {
	var got []string
	for line := range beersong.Lines() {
		got = append(got, line)
		if len(got) == 4 {
			break
		}
	}
	require.Len(t, got, 4)
	assert.Equal(t, "98 bottles of beer on the wall, 98 bottles of beer.", got[2])
}
