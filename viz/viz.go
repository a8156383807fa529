package viz

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/stackvec"
	"golang.org/x/term"
)

// SlotKind distinguishes the two kinds of backing-store slots.
type SlotKind int

// Slot kinds for palette lookup.
const (
	LiveSlot SlotKind = iota
	FreeSlot
)

// Config controls rendering of occupancy dumps.
type Config struct {
	LineWidth int // target line length in character cells
}

// Palette maps slot kinds to colors used for display. It may cover just a
// subset of the kinds; uncovered kinds render uncolored.
type Palette map[SlotKind]*color.Color

func makeDefaultPalette() Palette {
	return Palette{
		LiveSlot: color.New(color.FgBlue),
		FreeSlot: color.New(color.FgHiBlack),
	}
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	stackvec.T().P("viz", "console").Infof("setting line length to %d cells", config.LineWidth)
	return config
}

// Dump writes a one-glance occupancy rendering of a vector to w: the live
// prefix cell by cell, free slots as dots, preceded by a len/cap header.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive). If palette is nil, a
// default palette is used.
func Dump[T any](v stackvec.Vec[T], w io.Writer, config *Config, palette Palette) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	if palette == nil {
		palette = makeDefaultPalette()
	}
	if _, err := fmt.Fprintf(w, "vec %d/%d [", v.Len(), v.Cap()); err != nil {
		return err
	}
	width := 0
	for i := 0; i < v.Cap(); i++ {
		if i > 0 {
			if _, err := io.WriteString(w, "|"); err != nil {
				return err
			}
		}
		var cell string
		var kind SlotKind
		if i < v.Len() {
			cell = fmt.Sprintf("%v", v.At(i))
			kind = LiveSlot
		} else {
			cell = "·"
			kind = FreeSlot
		}
		width += len(cell) + 1
		if config.LineWidth > 0 && width > config.LineWidth {
			if _, err := io.WriteString(w, "\n  "); err != nil {
				return err
			}
			width = len(cell) + 1
		}
		if err := printCell(w, cell, palette[kind]); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

func printCell(w io.Writer, cell string, c *color.Color) error {
	if c != nil {
		_, err := c.Fprint(w, cell)
		return err
	}
	_, err := io.WriteString(w, cell)
	return err
}

// Dot outputs the slot structure of a vector in Graphviz DOT format
// (for debugging purposes).
//
// Live slots render as filled record cells, free slots as empty ones.
func Dot[T any](v stackvec.Vec[T], w io.Writer) error {
	if _, err := io.WriteString(w, "strict digraph {\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n"); err != nil {
		return err
	}
	label := ""
	for i := 0; i < v.Cap(); i++ {
		if i > 0 {
			label += "|"
		}
		if i < v.Len() {
			label += fmt.Sprintf("<s%d> %v", i, v.At(i))
		} else {
			label += fmt.Sprintf("<s%d> ∅", i)
		}
	}
	if _, err := fmt.Fprintf(w, "\t\"vec\" [label=\"%s\" style=filled,fillcolor=\"#a3d7e4\"];\n", label); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\t\"len\" [label=\"len=%d\" shape=plaintext];\n", v.Len()); err != nil {
		return err
	}
	if v.Len() > 0 {
		if _, err := fmt.Fprintf(w, "\t\"len\" -> \"vec\":s%d;\n", v.Len()-1); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
