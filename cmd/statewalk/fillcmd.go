package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirelenko/statewalk/chargrid"
	"github.com/mirelenko/statewalk/floodfill"
)

var (
	fillRow    int
	fillCol    int
	fillTarget string
	fillColor  string
)

var fillCmd = &cobra.Command{
	Use:   "fill <grid.yaml>",
	Short: "Recolor a connected region of a grid in place",
	Long: `Recolor the 4-connected region of target-colored cells reachable from
the start coordinate, and print the resulting grid.

Examples:
  statewalk fill map.yaml --row 3 --col 9 --target X --color C`,
	Args: cobra.ExactArgs(1),
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().IntVar(&fillRow, "row", 0, "Start row (0-based)")
	fillCmd.Flags().IntVar(&fillCol, "col", 0, "Start column (0-based)")
	fillCmd.Flags().StringVar(&fillTarget, "target", "", "Color to replace (required)")
	fillCmd.Flags().StringVar(&fillColor, "color", "", "Replacement color (required)")
	_ = fillCmd.MarkFlagRequired("target")
	_ = fillCmd.MarkFlagRequired("color")
}

func runFill(cmd *cobra.Command, args []string) error {
	g, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	target, err := firstRune("target", fillTarget)
	if err != nil {
		return err
	}
	color, err := firstRune("color", fillColor)
	if err != nil {
		return err
	}

	out, err := floodfill.Fill(g, chargrid.Coord{Row: fillRow, Col: fillCol}, target, color)
	if err != nil {
		return err
	}
	for _, row := range out.Strings() {
		fmt.Println(row)
	}

	return nil
}
