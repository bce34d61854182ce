package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	items := []string{"A", "B", "C", "D"}

	got, err := Move(items, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A", "D"}, got)

	// input is untouched
	assert.Equal(t, []string{"A", "B", "C", "D"}, items)
}

func TestMove_ToEnd(t *testing.T) {
	got, err := Move([]string{"A", "B", "C"}, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, got)
}

func TestMove_SamePosition(t *testing.T) {
	got, err := Move([]string{"A", "B"}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestMove_OutOfRange(t *testing.T) {
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err := Move([]string{"A", "B", "C"}, c[0], c[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestRemoveAt(t *testing.T) {
	got, err := RemoveAt([]string{"B", "C", "A", "D"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D"}, got)

	_, err = RemoveAt([]string{"A"}, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = RemoveAt(nil, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAppend_DeduplicatesByURL(t *testing.T) {
	got := Append([]string{"a.png", "b.png"}, "b.png", "c.png", "c.png")
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, got)
}

func TestAppend_EmptyList(t *testing.T) {
	got := Append(nil, "a.png")
	assert.Equal(t, []string{"a.png"}, got)
}
