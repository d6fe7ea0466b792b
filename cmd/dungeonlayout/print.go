package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonlayout/internal/config"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

var (
	colorWall  = color.Style{color.FgGray}
	colorWater = color.Style{color.FgCyan, color.OpBold}
)

// printer writes the text dump of a layout, optionally colorized.
type printer struct {
	w       io.Writer
	colored bool
}

func newPrinter(w io.Writer, colored bool) *printer {
	return &printer{w: w, colored: colored}
}

// colorEnabled resolves a color mode against the output file.
func colorEnabled(mode string, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		color.ForceColor()
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(out.Fd())) && color.SupportColor()
	}
}

// Print writes one line per map row.
func (p *printer) Print(dungeon *world.Dungeon) error {
	bw := bufio.NewWriter(p.w)
	for _, line := range dungeon.Lines() {
		if p.colored {
			line = p.colorize(line)
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// colorize styles runs of identical glyphs together.
func (p *printer) colorize(line string) string {
	var sb strings.Builder
	runes := []rune(line)
	for start := 0; start < len(runes); {
		end := start + 1
		for end < len(runes) && runes[end] == runes[start] {
			end++
		}
		run := string(runes[start:end])
		switch runes[start] {
		case world.Wall.Rune():
			sb.WriteString(colorWall.Sprint(run))
		case world.Water.Rune():
			sb.WriteString(colorWater.Sprint(run))
		default:
			sb.WriteString(run)
		}
		start = end
	}
	return sb.String()
}
