package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/katalvlaran/colourpoa/colour"
	"github.com/katalvlaran/colourpoa/core"
	"github.com/katalvlaran/colourpoa/export"
)

type graph = core.Graph[colour.ScorePair]

// labelColor maps each Label to the terminal colour of its DOT colour.
var labelColor = map[colour.Label]*color.Color{
	colour.GroupOnly1: color.New(color.FgRed, color.Bold),
	colour.BothGroups: color.New(color.FgMagenta, color.Bold),
	colour.GroupOnly2: color.New(color.FgBlue, color.Bold),
	colour.Neither:    color.New(color.FgWhite),
}

// useColor resolves --color for w: "on" and "off" force, "auto" checks for
// a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "on", "always":
		return true
	case "off", "never":
		return false
	}
	f, ok := w.(*os.File)

	return ok && isTerminal(f)
}

// printSummary writes node, edge and per-label edge counts.
func printSummary(w io.Writer, c export.Counts, colored bool) {
	fmt.Fprintf(w, "nodes %d, edges %d\n", c.Nodes, c.Edges)
	for _, l := range colour.Labels() {
		name := fmt.Sprintf("%-10s", l)
		if colored {
			clr := *labelColor[l]
			clr.EnableColor()
			name = clr.Sprint(name)
		}
		fmt.Fprintf(w, "  %s %-8s %d\n", name, l.Colour(), c.ByLabel[l])
	}
}
