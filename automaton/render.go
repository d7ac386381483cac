package automaton

import (
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/prysmaticlabs/automaton/shared/bitfield"
)

// Glyphs are the strings printed for alive and dead cells.
type Glyphs struct {
	Alive string
	Dead  string
}

// DefaultGlyphs prints alive cells as '#' and dead cells as a space.
var DefaultGlyphs = Glyphs{Alive: "#", Dead: " "}

// ColorGlyphs returns g with the alive glyph colored for terminals.
func ColorGlyphs(g Glyphs) Glyphs {
	return Glyphs{
		Alive: aurora.Green(g.Alive).Bold().String(),
		Dead:  g.Dead,
	}
}

// Render returns one line with a glyph per cell, separated by single spaces.
// The line has no trailing newline.
func Render(cells bitfield.Cells, g Glyphs) string {
	var b strings.Builder
	for i := 0; i < cells.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if cells.BitAt(i) {
			b.WriteString(g.Alive)
		} else {
			b.WriteString(g.Dead)
		}
	}
	return b.String()
}
