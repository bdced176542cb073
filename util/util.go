package util

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// SortedKeys returns m's keys in ascending order, for deterministic
// iteration.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// FirstMidiPath walks dir and returns the first .mid/.midi file found.
func FirstMidiPath(dir string) (string, error) {
	var res string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				res = s
				return fs.SkipAll
			}
		}
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return "", fmt.Errorf("error walking %v: %w", dir, err)
	}
	if res == "" {
		return "", fmt.Errorf("no MIDI files found in %v", dir)
	}
	return res, nil
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
