// Package statewalk is a small toolkit for depth-first exploration of
// explicit state spaces — graphs, character grids, and letter boards.
//
// 🚀 What is statewalk?
//
//	A generic search core plus four ready-made traversal strategies:
//		• search/     — the Problem contract, SearchNode tree, lazy expansion,
//		                path reconstruction, and single-result depth-first search
//		• chargrid/   — rectangular single-character grids with 4/8-connectivity
//		• ascent/     — backtracking longest strictly-ascending path on a grid
//		• floodfill/  — in-place 4-connected region recoloring
//		• wordsearch/ — prefix-pruned exhaustive word discovery on a letter board
//
// ✨ Why choose statewalk?
//
//   - Generic – states and actions are type parameters, not strings
//   - Explicit – every strategy owns its frontier and visited structures;
//     no hidden globals, no goroutines
//   - Honest – DFS returns *a* path, never claims the shortest one
//   - Observable – hooks and diagnostics counters instead of logging
//
// Quick ASCII example (single-result DFS over a road map):
//
//	    Milan───Novara
//	      │        │
//	    Genoa───Pavia
//
//	res, _ := search.DepthFirst[string, string](roads)
//	fmt.Println(res.Path, res.Cost)
//
// Callers construct a Problem, hand it to exactly one strategy, and consume
// the result value: a path with its cost, an integer length, a mutated grid,
// or a sorted word list. See each subpackage's doc.go for tutorials, and
// cmd/statewalk for a YAML-fed command-line front end.
package statewalk
