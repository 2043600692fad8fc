package notify

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Bell rings the terminal bell by writing the BEL control character.
type Bell struct {
	out io.Writer
	tty bool
}

// NewBell creates a bell sink bound to stdout.
func NewBell() *Bell {
	return &Bell{
		out: os.Stdout,
		tty: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// NewBellWriter creates a bell sink bound to an arbitrary writer.
func NewBellWriter(w io.Writer) *Bell {
	return &Bell{out: w, tty: true}
}

// Supported reports whether a terminal is attached.
func (b *Bell) Supported() bool {
	return b.tty
}

// Ring writes the BEL character to the terminal.
func (b *Bell) Ring() error {
	_, err := b.out.Write([]byte("\a"))
	return err
}
