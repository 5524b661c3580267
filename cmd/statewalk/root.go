package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "statewalk",
	Short: "Depth-first exploration of graphs, grids, and letter boards",
	Long: `statewalk runs one depth-first traversal strategy over a YAML dataset.

Strategies:
  route   find some path between two places on a weighted road map
  ascent  longest strictly-ascending character chain on a grid
  fill    recolor a connected region of a grid in place
  words   find every dictionary word traceable on a letter board`,
	SilenceUsage: true,
}
