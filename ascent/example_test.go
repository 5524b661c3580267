package ascent_test

import (
	"fmt"

	"github.com/mirelenko/statewalk/ascent"
	"github.com/mirelenko/statewalk/chargrid"
)

// ExampleLongest measures the longest strictly-ascending run on a letter
// board, starting from every 'A' cell.
func ExampleLongest() {
	g, err := chargrid.FromStrings([]string{
		"MNOPQ",
		"LKJIR",
		"ABCDE",
		"ZYXWV",
		"UTSFG",
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	length, err := ascent.Longest(g, 'A')
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("longest ascending path from 'A':", length)
	// Output:
	// longest ascending path from 'A': 5
}
