// Package search is the core of statewalk: a generic Problem contract, a
// parent-linked SearchNode tree, a lazy expansion operator, and a
// single-result depth-first traversal built on top of them.
//
// What:
//
//   - Problem[S, A]: the five-operation state-space contract — Initial,
//     Actions, Result, ActionCost, IsGoal. States are opaque comparable
//     values; actions are opaque values. Base[S, A] supplies defaults:
//     uniform cost 1, goal-by-equality, and not-implemented panics for the
//     two mandatory methods.
//   - Node[S, A]: immutable-once-created tree node carrying state, parent
//     reference, producing action, and accumulated path cost. Two sentinel
//     nodes exist: Failure (search exhausted) and Cutoff (depth limit hit),
//     both with +Inf path cost — absence markers, not errors.
//   - Expand(p, n): lazy iter.Seq of children, one per action, in Actions
//     order.
//   - PathStates(n) / PathActions(n): path reconstruction by walking parent
//     references to the root; empty for sentinels and nil.
//   - DepthFirst(p, opts...): Strategy A — explicit LIFO frontier, global
//     explored set, first goal wins.
//
// Why:
//   - One contract serves every traversal flavor: the grid strategies in
//     ascent/ and wordsearch/ drive their walks through Expand and Node,
//     each owning its own visited-set policy (global vs. per-branch).
//   - Parent back-references reconstruct paths on demand without storing
//     full paths eagerly on every frontier entry.
//
// Guarantees and non-guarantees:
//
//   - DepthFirst terminates on finite state spaces: each state is explored
//     at most once.
//   - The returned path is valid but NOT guaranteed minimal in cost or
//     length; this is uninformed depth-first search, not Dijkstra or A*.
//   - The choice among valid paths follows Actions enumeration order.
//
// Errors:
//
//   - ErrNilProblem           problem pointer is nil
//   - context.Canceled        traversal canceled via WithContext
//   - hook errors             propagated from OnVisit
//   - ErrNotImplemented       panic payload for unimplemented Base methods
//
// A missing path is an outcome, not an error: check Result.Found().
package search
