package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirelenko/statewalk/wordsearch"
)

var wordsVerbose bool

var wordsCmd = &cobra.Command{
	Use:   "words <board.yaml> <dict.yaml>",
	Short: "Find every dictionary word traceable on a letter board",
	Long: `Enumerate every dictionary word discoverable as a contiguous
8-directional, non-revisiting path of letters on the board.

Examples:
  statewalk words board.yaml dictionary.yaml
  statewalk words board.yaml dictionary.yaml --verbose`,
	Args: cobra.ExactArgs(2),
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)

	wordsCmd.Flags().BoolVar(&wordsVerbose, "verbose", false, "Report pruning diagnostics")
}

func runWords(cmd *cobra.Command, args []string) error {
	g, err := loadGrid(args[0])
	if err != nil {
		return err
	}
	dict, err := loadDict(args[1])
	if err != nil {
		return err
	}

	res, err := wordsearch.Search(g, dict, wordsearch.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	if len(res.Words) == 0 {
		fmt.Println("No words found.")
	} else {
		fmt.Println("Found:", strings.Join(res.Words, ", "))
	}
	if wordsVerbose {
		fmt.Println("Pruned branches:", res.PrunedBranches)
	}

	return nil
}
