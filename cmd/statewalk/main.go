// Command statewalk runs one traversal strategy over datasets loaded from
// YAML files: a weighted road map, a character grid, or a letter board plus
// a dictionary. It is a thin caller around the statewalk packages — it
// builds a Problem or grid, invokes exactly one strategy, and prints the
// result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
