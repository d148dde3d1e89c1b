package shakatext

import "errors"

// ErrUnknownGlyph is the sentinel wrapped (via fmt.Errorf's %w) into the
// error Load returns when a data line contains a rune that is not one of
// the recognized cell glyphs; the wrapping error text names the offending
// rune and its position.
var ErrUnknownGlyph = errors.New("shakatext: unknown glyph")
