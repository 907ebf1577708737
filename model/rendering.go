package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// Renderer draws the engine's current generation after each step.
type Renderer interface {
	Display(g *GridEngine) error
}

// TerminalRenderer draws the grid as block glyphs on a writer (stdout by default).
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) writer() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid, one text line per row
func (r *TerminalRenderer) Display(g *GridEngine) error {
	w := bufio.NewWriter(r.writer())
	lastCol := g.Width() - 1
	err := g.Each(func(_, col int, state Cell) {
		if state == Alive {
			w.WriteString(gridPosBlock)
		} else {
			w.WriteString(gridPosEmpty)
		}
		if col == lastCol {
			w.WriteByte('\n')
		}
	})
	if err != nil {
		return errors.Wrap(err, "[Display]")
	}
	return errors.Wrap(w.Flush(), "[Display] failed to flush output")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.writer()
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
