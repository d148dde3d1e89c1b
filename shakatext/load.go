package shakatext

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shakashaka/solver/cell"
)

// Load reads a bordered text-format board from r. The first and last lines
// are the border row and are discarded; each remaining line is decoded by
// taking every other rune starting at index 0 (the printed spacing between
// cells), dropping the left/right border runes that stride decoding lands
// on, and rejecting anything else that isn't a recognized cell glyph. This
// is a fixed format constant, not a heuristic: spacing is always exactly
// one rune.
func Load(r io.Reader) (*cell.Board, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) < 2 {
		return nil, fmt.Errorf("shakatext: input has no data rows")
	}
	lines = lines[1 : len(lines)-1]

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		runesInLine := []rune(line)
		var row []rune
		for j := 0; j < len(runesInLine); j += 2 {
			if r := runesInLine[j]; r != border {
				row = append(row, r)
			}
		}
		rows[i] = row
	}

	size := len(rows)
	grid := make([][]cell.Cell, size)
	for x := 0; x < size; x++ {
		grid[x] = make([]cell.Cell, size)
	}

	// rows is printed top-to-bottom (y = size-1 first); reverse to y-ascending.
	for i, row := range rows {
		y := size - 1 - i
		if len(row) != size {
			return nil, fmt.Errorf("shakatext: row %d has %d cells, want %d", y, len(row), size)
		}
		for x, r := range row {
			c, ok := runes[r]
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, col %d", ErrUnknownGlyph, r, y, x)
			}
			grid[x][y] = c
		}
	}

	return cell.FromRows(grid), nil
}
