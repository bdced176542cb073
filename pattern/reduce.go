package pattern

import "github.com/Emanuel-de-Jong/MIDI-To-Strudel/constants"

// Reduce collapses a slot grid to the coarsest halving that loses
// nothing: a halving is allowed only while every pair's second slot is
// empty, so each surviving entry is the first slot of its bucket and no
// onset ever moves. Halving repeats while the current length is even;
// it stops at the first odd length, at an invalid halving, or at
// length 1. The input is left untouched; one scratch buffer is reused
// across levels.
func Reduce(slots []string) []string {
	cur := make([]string, len(slots))
	copy(cur, slots)

	for len(cur)%2 == 0 {
		valid := true
		for i := 1; i < len(cur); i += 2 {
			if cur[i] != constants.EmptyMarker {
				valid = false
				break
			}
		}
		if !valid {
			break
		}

		half := len(cur) / 2
		for i := 0; i < half; i++ {
			cur[i] = cur[2*i]
		}
		cur = cur[:half]
	}

	return cur
}
