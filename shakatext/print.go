package shakatext

import (
	"fmt"
	"io"
	"strings"

	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
)

// Print writes b in the bordered text format, one space between cells, with
// (0, 0) printed at the bottom-left — the inverse of Load.
func Print(w io.Writer, b *cell.Board) error {
	size := b.Size()

	borderRow := strings.Repeat(string(border)+" ", size+1) + string(border)

	if _, err := fmt.Fprintln(w, borderRow); err != nil {
		return err
	}

	for y := size - 1; y >= 0; y-- {
		cols := make([]string, 0, size+2)
		cols = append(cols, string(border))
		for x := 0; x < size; x++ {
			c := b.At(loc.New(x, y))
			r, ok := Glyphs[c]
			if !ok {
				return fmt.Errorf("shakatext: no glyph for cell %s", c)
			}
			cols = append(cols, string(r))
		}
		cols = append(cols, string(border))
		if _, err := fmt.Fprintln(w, strings.Join(cols, " ")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, borderRow); err != nil {
		return err
	}
	return nil
}
