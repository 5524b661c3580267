package chargrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelenko/statewalk/chargrid"
)

func TestNew_EmptyGrid(t *testing.T) {
	_, err := chargrid.New(nil)
	assert.ErrorIs(t, err, chargrid.ErrEmptyGrid)

	_, err = chargrid.New([][]rune{{}})
	assert.ErrorIs(t, err, chargrid.ErrEmptyGrid)
}

func TestNew_NonRectangular(t *testing.T) {
	_, err := chargrid.New([][]rune{
		{'A', 'B'},
		{'C'},
	})
	assert.ErrorIs(t, err, chargrid.ErrNonRectangular)
}

func TestNew_DeepCopiesInput(t *testing.T) {
	cells := [][]rune{{'A', 'B'}, {'C', 'D'}}
	g, err := chargrid.New(cells)
	require.NoError(t, err)

	cells[0][0] = 'Z'
	assert.Equal(t, 'A', g.At(chargrid.Coord{Row: 0, Col: 0}), "grid must own its storage")
}

func TestFromStrings(t *testing.T) {
	g, err := chargrid.FromStrings([]string{"AB", "CD"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 'D', g.At(chargrid.Coord{Row: 1, Col: 1}))
	assert.Equal(t, []string{"AB", "CD"}, g.Strings())
}

func TestFromStrings_RaggedRows(t *testing.T) {
	_, err := chargrid.FromStrings([]string{"AB", "CDE"})
	assert.ErrorIs(t, err, chargrid.ErrNonRectangular)
}

func TestInBounds(t *testing.T) {
	g, err := chargrid.FromStrings([]string{"AB", "CD"})
	require.NoError(t, err)

	assert.True(t, g.InBounds(chargrid.Coord{Row: 0, Col: 0}))
	assert.True(t, g.InBounds(chargrid.Coord{Row: 1, Col: 1}))
	assert.False(t, g.InBounds(chargrid.Coord{Row: -1, Col: 0}))
	assert.False(t, g.InBounds(chargrid.Coord{Row: 0, Col: 2}))
	assert.False(t, g.InBounds(chargrid.Coord{Row: 2, Col: 0}))
}

func TestSetAndClone(t *testing.T) {
	g, err := chargrid.FromStrings([]string{"AB", "CD"})
	require.NoError(t, err)

	cp := g.Clone()
	g.Set(chargrid.Coord{Row: 0, Col: 0}, 'Z')

	assert.Equal(t, 'Z', g.At(chargrid.Coord{Row: 0, Col: 0}))
	assert.Equal(t, 'A', cp.At(chargrid.Coord{Row: 0, Col: 0}), "clone must be independent")
}

func TestFind_RowMajorOrder(t *testing.T) {
	g, err := chargrid.FromStrings([]string{
		"AXA",
		"XAX",
	})
	require.NoError(t, err)

	assert.Equal(t, []chargrid.Coord{
		{Row: 0, Col: 0},
		{Row: 0, Col: 2},
		{Row: 1, Col: 1},
	}, g.Find('A'))
	assert.Empty(t, g.Find('Q'))
}

func TestOffsets_OrderIsFixed(t *testing.T) {
	assert.Equal(t, []chargrid.Coord{
		{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1},
	}, chargrid.Offsets(chargrid.Conn4))

	conn8 := chargrid.Offsets(chargrid.Conn8)
	require.Len(t, conn8, 8)
	assert.Equal(t, chargrid.Coord{Row: -1, Col: -1}, conn8[0])
	assert.Equal(t, chargrid.Coord{Row: 1, Col: 1}, conn8[7])
	assert.NotContains(t, conn8, chargrid.Coord{Row: 0, Col: 0})
}

func TestCoordAdd(t *testing.T) {
	c := chargrid.Coord{Row: 2, Col: 3}
	assert.Equal(t, chargrid.Coord{Row: 1, Col: 4}, c.Add(chargrid.Coord{Row: -1, Col: 1}))
}
