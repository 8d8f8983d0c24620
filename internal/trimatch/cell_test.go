package trimatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trimatchhq/trimatch-backend/internal/apperror"
)

func TestParseCell(t *testing.T) {
	t.Run("Parses the documented corner and center cells", func(t *testing.T) {
		// Given: the external column-letter + row-digit format
		// When/Then: a1 is bottom-left, b2 the center, c3 top-right
		cases := map[string]Cell{
			"a1": 6,
			"b2": 4,
			"c3": 2,
			"a3": 0,
			"c1": 8,
		}
		for input, want := range cases {
			got, err := ParseCell(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("Is case-insensitive and tolerates surrounding spaces", func(t *testing.T) {
		got, err := ParseCell(" B2 ")
		require.NoError(t, err)
		assert.Equal(t, Cell(4), got)
	})

	t.Run("Rejects malformed references", func(t *testing.T) {
		for _, input := range []string{"", "b", "d2", "a4", "22", "b2x"} {
			_, err := ParseCell(input)
			assert.ErrorIs(t, err, apperror.ErrInvalidCell, input)
		}
	})

	t.Run("String is the inverse of ParseCell", func(t *testing.T) {
		for c := Cell(0); c < CellCount; c++ {
			parsed, err := ParseCell(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})
}

func TestParseRank(t *testing.T) {
	t.Run("Accepts single letters and full names in any case", func(t *testing.T) {
		cases := map[string]Rank{
			"n":      Noble,
			"K":      Knight,
			"m":      Mystic,
			"Noble":  Noble,
			"MYSTIC": Mystic,
		}
		for input, want := range cases {
			got, err := ParseRank(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("Rejects unknown rank letters", func(t *testing.T) {
		_, err := ParseRank("x")
		assert.ErrorIs(t, err, apperror.ErrInvalidRank)
	})
}

func TestRankOrdering(t *testing.T) {
	// Given: the strict dominance order Noble < Knight < Mystic
	assert.True(t, Mystic.Beats(Knight))
	assert.True(t, Mystic.Beats(Noble))
	assert.True(t, Knight.Beats(Noble))

	// Then: equal or weaker ranks never beat
	assert.False(t, Noble.Beats(Noble))
	assert.False(t, Noble.Beats(Knight))
	assert.False(t, Knight.Beats(Mystic))
}
