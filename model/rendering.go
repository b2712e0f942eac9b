package model

import (
	"bufio"
	"io"
	"os"
)

const (
	gridPosBlock   = "██"
	gridPosPreview = "░░"
	gridPosEmpty   = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws a grid and an optional placement overlay as text
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid to the terminal. Living cells win over preview
// cells; overlay may be nil.
func (r *TerminalRenderer) Display(g *Grid, overlay *Mask) error {
	w := bufio.NewWriter(r.out())
	for y := range g.size {
		for x := range g.size {
			switch {
			case g.cells[y][x]:
				w.WriteString(gridPosBlock)
			case overlay != nil && overlay.Get(y, x):
				w.WriteString(gridPosPreview)
			default:
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out(), ansiClearScreen)
	return err
}
