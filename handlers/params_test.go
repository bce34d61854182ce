package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	cases := []struct {
		name               string
		page, pageSize     int
		wantPage, wantSize int
		wantFrom, wantTo   int
	}{
		{"defaults", 0, 0, 1, 12, 0, 11},
		{"first page explicit", 1, 12, 1, 12, 0, 11},
		{"second page", 2, 12, 2, 12, 12, 23},
		{"negative page clamps", -5, 10, 1, 10, 0, 9},
		{"oversized page size clamps", 1, 500, 1, 100, 0, 99},
		{"small page size", 3, 1, 3, 1, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, size, from, to := paginate(tc.page, tc.pageSize, projectPageSize)
			assert.Equal(t, tc.wantPage, p)
			assert.Equal(t, tc.wantSize, size)
			assert.Equal(t, tc.wantFrom, from)
			assert.Equal(t, tc.wantTo, to)
		})
	}
}

func TestPaginate_PagesCoverWithoutOverlap(t *testing.T) {
	// Consecutive pages must tile the row space exactly.
	_, _, _, prevTo := paginate(1, 10, inquiryPageSize)
	for page := 2; page <= 5; page++ {
		_, _, from, to := paginate(page, 10, inquiryPageSize)
		assert.Equal(t, prevTo+1, from)
		prevTo = to
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, genreSearchLimit, clampLimit(0, genreSearchLimit, maxGenreLimit))
	assert.Equal(t, genreSearchLimit, clampLimit(-1, genreSearchLimit, maxGenreLimit))
	assert.Equal(t, 50, clampLimit(50, genreSearchLimit, maxGenreLimit))
	assert.Equal(t, maxGenreLimit, clampLimit(5000, genreSearchLimit, maxGenreLimit))
}

func TestNormalizeGenreNames(t *testing.T) {
	got := normalizeGenreNames([]string{" RPG ", "RPG", "", "  ", "Puzzle", "rpg"})
	assert.Equal(t, []string{"RPG", "Puzzle", "rpg"}, got)

	assert.Empty(t, normalizeGenreNames(nil))
	assert.Empty(t, normalizeGenreNames([]string{"", "   "}))
}
