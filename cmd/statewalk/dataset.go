package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mirelenko/statewalk/chargrid"
)

// graphFile is the YAML shape of a weighted road map:
//
//	roads:
//	  Milan: {Novara: 52, Pavia: 42}
//	  Novara: {Milan: 52, Genoa: 151}
type graphFile struct {
	Roads map[string]map[string]float64 `yaml:"roads"`
}

// gridFile is the YAML shape of a character grid, one string per row:
//
//	rows:
//	  - "MNOPQ"
//	  - "LKJIR"
type gridFile struct {
	Rows []string `yaml:"rows"`
}

// dictFile is the YAML shape of a word dictionary:
//
//	words: [CAT, DOG, RAT]
type dictFile struct {
	Words []string `yaml:"words"`
}

func loadRoads(path string) (map[string]map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read road map: %w", err)
	}
	var f graphFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse road map %s: %w", path, err)
	}
	if len(f.Roads) == 0 {
		return nil, fmt.Errorf("road map %s: no roads defined", path)
	}

	return f.Roads, nil
}

func loadGrid(path string) (*chargrid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	var f gridFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse grid %s: %w", path, err)
	}
	g, err := chargrid.FromStrings(f.Rows)
	if err != nil {
		return nil, fmt.Errorf("grid %s: %w", path, err)
	}

	return g, nil
}

func loadDict(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	var f dictFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}

	return f.Words, nil
}

// firstRune returns the single character a flag names.
func firstRune(flag, s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("--%s must be exactly one character, got %q", flag, s)
	}

	return runes[0], nil
}
