package text

import (
	"iter"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Glyph is one positioned glyph of a store, as seen by consumers.
type Glyph struct {
	ID font.GID

	// Advance is the horizontal pen advance, without word spacing.
	Advance fixed.Int26_6

	// Offset is the position of the glyph relative to the pen, y down.
	Offset fixed.Point26_6

	// CharIsSpace is set when the glyph was shaped from a space character
	// and therefore receives the run's extra word spacing.
	CharIsSpace bool
}

// GlyphStore holds the shaped glyphs of one word or one inter-word gap.
// Glyph cluster indices refer to the characters of the owning run.
type GlyphStore struct {
	glyphs     []shaping.Glyph
	spaces     []bool
	chars      Range
	whitespace bool
}

// NewGlyphStore wraps glyphs shaped from text[chars.Start:chars.End()].
// text is the full character sequence of the run, so that glyph cluster
// indices can be mapped back to characters.
func NewGlyphStore(glyphs []shaping.Glyph, text []rune, chars Range, whitespace bool) *GlyphStore {
	spaces := make([]bool, len(glyphs))
	for i, g := range glyphs {
		if idx := g.TextIndex(); idx >= 0 && idx < len(text) {
			spaces[i] = isSpaceChar(text[idx])
		}
	}
	return &GlyphStore{
		glyphs:     glyphs,
		spaces:     spaces,
		chars:      chars,
		whitespace: whitespace,
	}
}

// Len returns the number of glyphs.
func (s *GlyphStore) Len() int { return len(s.glyphs) }

// Chars returns the characters the store was shaped from.
func (s *GlyphStore) Chars() Range { return s.chars }

// IsWhitespace reports whether the store consists only of whitespace.
func (s *GlyphStore) IsWhitespace() bool { return s.whitespace }

// Advance returns the total advance of the store's glyphs.
func (s *GlyphStore) Advance() fixed.Int26_6 {
	var sum fixed.Int26_6
	for _, g := range s.glyphs {
		sum += g.XAdvance
	}
	return sum
}

// GlyphsInRange returns the glyphs whose cluster starts inside r, in shaped
// (visual) order.
func (s *GlyphStore) GlyphsInRange(r Range) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		for i, g := range s.glyphs {
			if !r.Contains(g.TextIndex()) {
				continue
			}
			glyph := Glyph{
				ID:          g.GlyphID,
				Advance:     g.XAdvance,
				Offset:      fixed.Point26_6{X: g.XOffset, Y: -g.YOffset},
				CharIsSpace: s.spaces[i],
			}
			if !yield(glyph) {
				return
			}
		}
	}
}

func isSpaceChar(r rune) bool {
	return r == ' ' || r == '\u00a0'
}
