// Package shakatext loads and prints boards in the plain-text glyph format:
// a bordered grid of single-rune cell glyphs, one blank column between
// cells, with (0, 0) at the bottom-left.
//
// Ported from original_source/package/io.py's load_board_from_text and
// Board.__str__.
package shakatext
