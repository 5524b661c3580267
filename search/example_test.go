package search_test

import (
	"fmt"
	"sort"

	"github.com/mirelenko/statewalk/search"
)

// cityProblem wires a weighted adjacency map into the Problem contract.
// Actions are destination names, sorted so the traversal is reproducible.
type cityProblem struct {
	search.Base[string, string]
	roads map[string]map[string]float64
}

func (p *cityProblem) Actions(s string) []string {
	moves := make([]string, 0, len(p.roads[s]))
	for to := range p.roads[s] {
		moves = append(moves, to)
	}
	sort.Strings(moves)

	return moves
}

func (p *cityProblem) Result(s, a string) string { return a }

func (p *cityProblem) ActionCost(s, a, next string) float64 { return p.roads[s][next] }

// ExampleDepthFirst finds some route between two towns on a small road map.
// Depth-first search returns a valid route, not necessarily the cheapest.
func ExampleDepthFirst() {
	roads := map[string]map[string]float64{
		"Milan":  {"Novara": 52, "Pavia": 42},
		"Novara": {"Milan": 52, "Genoa": 151},
		"Pavia":  {"Milan": 42},
		"Genoa":  {"Novara": 151},
	}
	p := &cityProblem{
		Base:  search.Base[string, string]{Start: "Milan", Goal: "Genoa"},
		roads: roads,
	}

	res, err := search.DepthFirst[string, string](p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("route:", res.Path)
	fmt.Println("cost:", res.Cost)
	// Output:
	// route: [Milan Novara Genoa]
	// cost: 203
}
