package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelenko/statewalk/search"
)

// chainProblem is a line graph 0→1→2→…→n with unit costs.
type chainProblem struct {
	search.Base[int, int]
	n int
}

func (p *chainProblem) Actions(s int) []int {
	if s >= p.n {
		return nil
	}

	return []int{1}
}

func (p *chainProblem) Result(s, a int) int { return s + a }

// forkProblem branches from 0 into 1 and 2 with distinct costs.
type forkProblem struct {
	search.Base[string, string]
}

func (p *forkProblem) Actions(s string) []string {
	if s == "root" {
		return []string{"left", "right"}
	}

	return nil
}

func (p *forkProblem) Result(s, a string) string { return a }

func (p *forkProblem) ActionCost(s, a, next string) float64 {
	if next == "left" {
		return 3
	}

	return 7
}

func TestNewNode_Root(t *testing.T) {
	n := search.NewNode[string, string]("A")
	assert.Equal(t, "A", n.State)
	assert.Nil(t, n.Parent)
	assert.Zero(t, n.PathCost)
	assert.Equal(t, 0, n.Depth())
	assert.False(t, n.IsSentinel())
}

func TestSentinels(t *testing.T) {
	f := search.Failure[string, string]()
	c := search.Cutoff[string, string]()

	assert.True(t, f.IsFailure())
	assert.False(t, f.IsCutoff())
	assert.True(t, c.IsCutoff())
	assert.False(t, c.IsFailure())
	assert.True(t, f.IsSentinel())
	assert.True(t, c.IsSentinel())

	assert.True(t, math.IsInf(f.PathCost, 1), "failure carries infinite path cost")
	assert.True(t, math.IsInf(c.PathCost, 1), "cutoff carries infinite path cost")
}

func TestPathStates_NilAndSentinel(t *testing.T) {
	assert.Empty(t, search.PathStates[string, string](nil))
	assert.Empty(t, search.PathStates(search.Failure[string, string]()))
	assert.Empty(t, search.PathStates(search.Cutoff[string, string]()))
	assert.Empty(t, search.PathActions[string, string](nil))
	assert.Empty(t, search.PathActions(search.Failure[string, string]()))
}

func TestExpand_OrderAndCosts(t *testing.T) {
	p := &forkProblem{}
	root := search.NewNode[string, string]("root")

	var children []*search.Node[string, string]
	for child := range search.Expand[string, string](p, root) {
		children = append(children, child)
	}

	require.Len(t, children, 2)
	// Children follow Actions order exactly
	assert.Equal(t, "left", children[0].State)
	assert.Equal(t, "right", children[1].State)
	assert.Equal(t, 3.0, children[0].PathCost)
	assert.Equal(t, 7.0, children[1].PathCost)
	assert.Same(t, root, children[0].Parent)
	assert.Same(t, root, children[1].Parent)
}

func TestExpand_EarlyStop(t *testing.T) {
	p := &forkProblem{}
	root := search.NewNode[string, string]("root")

	count := 0
	for range search.Expand[string, string](p, root) {
		count++
		break
	}
	assert.Equal(t, 1, count, "lazy sequence stops when the consumer does")
}

func TestPathReconstruction_Chain(t *testing.T) {
	p := &chainProblem{n: 3}
	node := search.NewNode[int, int](0)
	// Walk 0→1→2→3 by always taking the single child
	for i := 0; i < 3; i++ {
		for child := range search.Expand[int, int](p, node) {
			node = child
		}
	}

	assert.Equal(t, []int{0, 1, 2, 3}, search.PathStates(node))
	assert.Equal(t, []int{1, 1, 1}, search.PathActions(node))
	assert.Equal(t, 3, node.Depth())
	assert.Equal(t, 3.0, node.PathCost, "unit default cost accumulates per step")
}

func TestPathCost_MonotoneAlongChain(t *testing.T) {
	p := &chainProblem{n: 5}
	node := search.NewNode[int, int](0)
	prev := node.PathCost
	for i := 0; i < 5; i++ {
		for child := range search.Expand[int, int](p, node) {
			node = child
		}
		assert.GreaterOrEqual(t, node.PathCost, prev)
		prev = node.PathCost
	}
}

func TestBase_Defaults(t *testing.T) {
	b := search.Base[string, string]{Start: "A", Goal: "Z"}

	assert.Equal(t, "A", b.Initial())
	assert.True(t, b.IsGoal("Z"))
	assert.False(t, b.IsGoal("A"))
	assert.Equal(t, 1.0, b.ActionCost("A", "x", "B"))
}

func TestBase_NotImplementedPanics(t *testing.T) {
	b := search.Base[string, string]{}

	assert.PanicsWithValue(t, search.ErrNotImplemented.Error()+": Actions", func() {
		b.Actions("A")
	})
	assert.PanicsWithValue(t, search.ErrNotImplemented.Error()+": Result", func() {
		b.Result("A", "x")
	})
}
