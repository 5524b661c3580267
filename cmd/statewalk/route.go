package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirelenko/statewalk/search"
)

var (
	routeFrom string
	routeTo   string
)

var routeCmd = &cobra.Command{
	Use:   "route <roads.yaml>",
	Short: "Find some path between two places on a weighted road map",
	Long: `Find a path between two places using depth-first search.

The returned route is valid but not guaranteed to be the cheapest or the
shortest; depth-first search reports the first route it completes.

Examples:
  statewalk route italy.yaml --from Milan --to Alessandria`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)

	routeCmd.Flags().StringVar(&routeFrom, "from", "", "Start place (required)")
	routeCmd.Flags().StringVar(&routeTo, "to", "", "Goal place (required)")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")
}

// roadProblem adapts a weighted adjacency map to the search contract.
// Actions are destination names, sorted so runs are reproducible.
type roadProblem struct {
	search.Base[string, string]
	roads map[string]map[string]float64
}

func (p *roadProblem) Actions(s string) []string {
	moves := make([]string, 0, len(p.roads[s]))
	for to := range p.roads[s] {
		moves = append(moves, to)
	}
	sort.Strings(moves)

	return moves
}

func (p *roadProblem) Result(s, a string) string { return a }

func (p *roadProblem) ActionCost(s, a, next string) float64 { return p.roads[s][next] }

func runRoute(cmd *cobra.Command, args []string) error {
	roads, err := loadRoads(args[0])
	if err != nil {
		return err
	}
	if _, ok := roads[routeFrom]; !ok {
		return fmt.Errorf("unknown place %q", routeFrom)
	}

	p := &roadProblem{
		Base:  search.Base[string, string]{Start: routeFrom, Goal: routeTo},
		roads: roads,
	}
	res, err := search.DepthFirst[string, string](p, search.WithContext[string](cmd.Context()))
	if err != nil {
		return err
	}
	if !res.Found() {
		fmt.Printf("No route from %s to %s.\n", routeFrom, routeTo)

		return nil
	}

	fmt.Println("Route:", strings.Join(res.Path, " → "))
	fmt.Println("Cost:", res.Cost)

	return nil
}
