package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirelenko/statewalk/ascent"
)

var ascentStart string

var ascentCmd = &cobra.Command{
	Use:   "ascent <grid.yaml>",
	Short: "Longest strictly-ascending character chain on a grid",
	Long: `Measure the longest simple path whose characters ascend by exactly one
code point per 8-directional step, starting from every cell that matches
the start character.

Examples:
  statewalk ascent board.yaml --start A`,
	Args: cobra.ExactArgs(1),
	RunE: runAscent,
}

func init() {
	rootCmd.AddCommand(ascentCmd)

	ascentCmd.Flags().StringVar(&ascentStart, "start", "", "Start character (required)")
	_ = ascentCmd.MarkFlagRequired("start")
}

func runAscent(cmd *cobra.Command, args []string) error {
	g, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	start, err := firstRune("start", ascentStart)
	if err != nil {
		return err
	}

	length, err := ascent.Longest(g, start, ascent.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	fmt.Printf("Longest ascending path from %q: %d\n", ascentStart, length)

	return nil
}
