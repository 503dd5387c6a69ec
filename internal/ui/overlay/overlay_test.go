package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func grid(w, h int, ch string) string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(ch, w)
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Center(t *testing.T) {
	out := Place("XX\nXX", grid(6, 4, "."), 6, 4, Center, 0)
	require.Equal(t, "......\n..XX..\n..XX..\n......", out)
}

func TestPlace_BottomWithPad(t *testing.T) {
	out := Place("XX", grid(4, 4, "."), 4, 4, Bottom, 1)
	require.Equal(t, "....\n....\n.XX.\n....", out)
}

func TestPlace_Top(t *testing.T) {
	out := Place("X", grid(3, 3, "."), 3, 3, Top, 0)
	require.Equal(t, ".X.\n...\n...", out)
}

func TestPlaceAt_ShortBackgroundIsPadded(t *testing.T) {
	out := PlaceAt("X", "ab", 4, 2, 3)
	require.Equal(t, "ab\n\n    X", out)
}

func TestPlaceAt_PreservesStyledBackground(t *testing.T) {
	bg := "\x1b[31mredredred\x1b[0m"
	out := PlaceAt("X", bg, 3, 0, 1)
	require.Contains(t, out, "X")
	require.Contains(t, out, "\x1b[31m")
}
