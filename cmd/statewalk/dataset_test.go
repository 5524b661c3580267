package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelenko/statewalk/search"
)

func TestLoadRoads(t *testing.T) {
	roads, err := loadRoads(filepath.Join("testdata", "roads.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 52.0, roads["Milan"]["Novara"])
	assert.Contains(t, roads, "Alessandria")
}

func TestLoadRoads_MissingFile(t *testing.T) {
	_, err := loadRoads(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadGrid(t *testing.T) {
	g, err := loadGrid(filepath.Join("testdata", "board.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 5, g.Cols())
}

func TestLoadDict(t *testing.T) {
	words, err := loadDict(filepath.Join("testdata", "dictionary.yaml"))
	require.NoError(t, err)
	assert.Contains(t, words, "CAT")
}

func TestFirstRune(t *testing.T) {
	r, err := firstRune("start", "A")
	require.NoError(t, err)
	assert.Equal(t, 'A', r)

	_, err = firstRune("start", "AB")
	assert.Error(t, err)
	_, err = firstRune("start", "")
	assert.Error(t, err)
}

func TestRoadProblem_RouteExists(t *testing.T) {
	roads, err := loadRoads(filepath.Join("testdata", "roads.yaml"))
	require.NoError(t, err)

	p := &roadProblem{
		Base:  search.Base[string, string]{Start: "Milan", Goal: "Alessandria"},
		roads: roads,
	}
	res, err := search.DepthFirst[string, string](p)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, "Milan", res.Path[0])
	assert.Equal(t, "Alessandria", res.Path[len(res.Path)-1])
}
