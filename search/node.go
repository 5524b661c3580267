package search

import (
	"iter"
	"math"
)

// markerKind tags the two conceptual sentinel nodes.
type markerKind uint8

const (
	markerNone markerKind = iota
	markerFailure
	markerCutoff
)

// Node is a node in the search tree: a state, an ownership reference to the
// parent node, the action that produced it, and the accumulated path cost.
//
// Nodes form a tree, not a DAG: every non-root node has exactly one parent
// and no node is ever shared by two parents. That is what makes parent-chain
// path reconstruction correct. A Node is immutable once created.
type Node[S comparable, A any] struct {
	// State is the state this node stands for.
	State S

	// Parent is the node this one was expanded from; nil for roots.
	Parent *Node[S, A]

	// Action is the action that produced this node from Parent.
	// Zero value for roots.
	Action A

	// PathCost is the accumulated action cost from the root.
	// Non-decreasing along the parent chain for non-negative costs.
	PathCost float64

	marker markerKind
}

// NewNode returns a root node for state with zero path cost and no parent.
func NewNode[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// Failure returns the sentinel node marking an exhausted search:
// no data, infinite path cost. Use instead of a raised error.
func Failure[S comparable, A any]() *Node[S, A] {
	return &Node[S, A]{PathCost: math.Inf(1), marker: markerFailure}
}

// Cutoff returns the sentinel node marking a depth-limited search that was
// interrupted before exhausting the space: no data, infinite path cost.
func Cutoff[S comparable, A any]() *Node[S, A] {
	return &Node[S, A]{PathCost: math.Inf(1), marker: markerCutoff}
}

// IsFailure reports whether n is the failure sentinel.
func (n *Node[S, A]) IsFailure() bool { return n != nil && n.marker == markerFailure }

// IsCutoff reports whether n is the cutoff sentinel.
func (n *Node[S, A]) IsCutoff() bool { return n != nil && n.marker == markerCutoff }

// IsSentinel reports whether n is one of the two sentinel nodes.
func (n *Node[S, A]) IsSentinel() bool { return n != nil && n.marker != markerNone }

// Depth returns the number of edges between n and its root.
// Sentinels and nil have depth 0. Complexity: O(depth).
func (n *Node[S, A]) Depth() int {
	d := 0
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		d++
	}

	return d
}

// Expand produces the children of node n under problem p as a lazy sequence,
// one child per action, in the exact order p.Actions yields actions.
// Each child carries PathCost = n.PathCost + p.ActionCost(s, a, next).
//
// Ordering is significant: depth-first strategies explore the most recently
// pushed child first, so two Problems with different action orderings return
// different (both valid) answers.
func Expand[S comparable, A any](p Problem[S, A], n *Node[S, A]) iter.Seq[*Node[S, A]] {
	return func(yield func(*Node[S, A]) bool) {
		s := n.State
		for _, a := range p.Actions(s) {
			next := p.Result(s, a)
			child := &Node[S, A]{
				State:    next,
				Parent:   n,
				Action:   a,
				PathCost: n.PathCost + p.ActionCost(s, a, next),
			}
			if !yield(child) {
				return
			}
		}
	}
}

// PathStates returns the ordered state sequence from the root to n by
// walking the parent chain. Sentinel and nil nodes yield an empty sequence;
// otherwise the sequence ends in n.State and has length 1 + depth(n).
// Pure and uncached: O(depth) per call.
func PathStates[S comparable, A any](n *Node[S, A]) []S {
	if n == nil || n.IsSentinel() {
		return nil
	}

	return append(PathStates(n.Parent), n.State)
}

// PathActions returns the ordered action sequence from the root to n.
// Empty at the root and for sentinel or nil nodes. O(depth) per call.
func PathActions[S comparable, A any](n *Node[S, A]) []A {
	if n == nil || n.IsSentinel() || n.Parent == nil {
		return nil
	}

	return append(PathActions(n.Parent), n.Action)
}
