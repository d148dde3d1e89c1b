package shakatext

import (
	"github.com/shakashaka/solver/cell"
	"github.com/shakashaka/solver/loc"
)

// border is the frame rune drawn around the grid. It is never a valid cell
// glyph; Load drops it explicitly when stride-decoding a data line.
const border = '▢'

var cornerGlyph = [4]rune{
	loc.LL: '◣',
	loc.UL: '◤',
	loc.UR: '◥',
	loc.LR: '◢',
}

// Glyphs maps every decided or undecided Cell value to its printed rune.
var Glyphs = buildGlyphs()

// runes is the inverse of Glyphs, used by Load.
var runes = buildRunes()

func buildGlyphs() map[cell.Cell]rune {
	m := map[cell.Cell]rune{
		cell.NewBlack():     '■',
		cell.NewUndecided(): ' ',
		cell.NewEmpty():     '◦',
	}
	for n := 0; n <= 4; n++ {
		m[cell.NewNumber(n)] = rune('0' + n)
	}
	for _, c := range []loc.Corner{loc.LL, loc.UL, loc.UR, loc.LR} {
		m[cell.NewTriangle(c)] = cornerGlyph[c]
	}
	return m
}

func buildRunes() map[rune]cell.Cell {
	m := make(map[rune]cell.Cell, len(Glyphs))
	for c, r := range Glyphs {
		m[r] = c
	}
	return m
}
