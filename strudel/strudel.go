// Package strudel assembles rendered tracks into a Strudel snippet.
package strudel

import (
	"fmt"
	"strings"

	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/constants"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/model"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/util"
)

// Build produces the full output text: a setcpm header, then one
// note(`<...>`) block per track with its bars wrapped a few per line.
func Build(tracks []model.RenderedTrack, bpm float64, tabSize int) string {
	lines := []string{fmt.Sprintf("setcpm(%v/4)\n", int(bpm))}

	for _, bars := range tracks {
		lines = append(lines, "$: note(`<")
		for i := 0; i < len(bars); i += constants.BarsPerLine {
			chunk := bars[i:util.Min(i+constants.BarsPerLine, len(bars))]
			lines = append(lines, indent(tabSize, 2)+strings.Join(chunk, " "))
		}
		lines = append(lines, indent(tabSize, 1)+">`).sound(\"piano\")\n")
	}

	return strings.Join(lines, "\n")
}

func indent(tabSize, tabs int) string {
	return strings.Repeat(" ", tabSize*tabs)
}
